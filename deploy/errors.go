package deploy

type errorCode int

const (
	unknown errorCode = iota
	unknownCluster
	invalidInstance
)

var (
	errMsg = map[errorCode]string{
		unknown:         "unknown",
		unknownCluster:  "cluster not configured for service",
		invalidInstance: "instance not known to service",
	}
)

type terror struct {
	code errorCode
	msg  string
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
		return s + ": " + e.msg
	}
	return s
}

// IsUnknownCluster reports whether err means the requested cluster is not
// configured for the service
func IsUnknownCluster(err error) bool {
	t, ok := err.(*terror)
	return ok && t.code == unknownCluster
}

// IsInvalidInstance reports whether err means a requested instance is not
// known to the service; such a request is rejected before any tag is pushed
func IsInvalidInstance(err error) bool {
	t, ok := err.(*terror)
	return ok && t.code == invalidInstance
}
