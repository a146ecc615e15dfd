package remotegit

import "fmt"

type errorCode int

const (
	unknown errorCode = iota
	refFetch
	pushRejected
)

var (
	errMsg = map[errorCode]string{
		unknown:      "unknown",
		refFetch:     "cannot list remote refs",
		pushRejected: "remote did not accept ref update",
	}
)

type terror struct {
	code  errorCode
	msg   string
	cause error
}

func (e *terror) Error() string {
	if e == nil {
		return ""
	}

	s, ok := errMsg[e.code]
	if !ok {
		s = "unknown err"
	}
	if len(e.msg) > 0 {
		s = s + ": " + e.msg
	}
	if e.cause != nil {
		s = fmt.Sprintf("%v: %v", s, e.cause)
	}
	return s
}

// Cause implements the causer interface of github.com/pkg/errors
func (e *terror) Cause() error {
	return e.cause
}

// IsFetchError reports whether err came from taking a ref snapshot; a
// fetch failure is fatal for the whole resolution pass
func IsFetchError(err error) bool {
	t, ok := err.(*terror)
	return ok && t.code == refFetch
}

// IsPushRejected reports whether err came from a tag force push
func IsPushRejected(err error) bool {
	t, ok := err.(*terror)
	return ok && t.code == pushRejected
}
