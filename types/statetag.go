package types

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// state tags are the ledger protocol:
//
//	refs/tags/paasta-<branch>-<forceBounce>-<state>
//
// branch is the literal control branch name, forceBounce is an opaque
// hyphen-free token, state is everything after the next hyphen (and so may
// itself contain hyphens, or be empty).
//
// decoding needs the branch passed in: the grammar cannot tell a hyphenated
// branch apart from the forceBounce/state segments on its own.

const stateTagPrefix = "refs/tags/paasta-"

// EncodeStateTag packs (branch, forceBounce, state) into a state tag ref name.
// forceBounce must be nonempty and hyphen-free, or the tag would not decode
// back to the same triple.
func EncodeStateTag(branch, forceBounce string, state DesiredState) (string, error) {
	if forceBounce == "" {
		return "", errors.New("statetag: empty force bounce token")
	}
	if strings.Contains(forceBounce, "-") {
		return "", errors.Errorf("statetag: force bounce token %q contains a hyphen", forceBounce)
	}
	return fmt.Sprintf("%v%v-%v-%v", stateTagPrefix, branch, forceBounce, state), nil
}

// DecodeStateTag matches ref against the state tag grammar for the given
// control branch. ok is false when ref is not a state tag for branch; most
// refs are not, that is not an error.
func DecodeStateTag(ref, branch string) (state DesiredState, forceBounce string, ok bool) {
	prefix := stateTagPrefix + branch + "-"
	if !strings.HasPrefix(ref, prefix) {
		return "", "", false
	}

	rest := ref[len(prefix):]
	i := strings.Index(rest, "-")
	if i <= 0 {
		// forceBounce needs at least one character and a trailing separator
		return "", "", false
	}

	return DesiredState(rest[i+1:]), rest[:i], true
}
