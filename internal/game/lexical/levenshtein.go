package lexical

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrInvalidArgument is returned when an input is empty or whitespace only.
var ErrInvalidArgument = errors.New("lexical: invalid argument")

// Levenshtein returns the minimum number of single character insertions,
// deletions, and substitutions needed to turn a into b.
//
// Precondition: neither a nor b may be blank.
// Postcondition: the distance is symmetric and zero iff a == b.
func Levenshtein(a, b string) (int, error) {
	if strings.TrimSpace(a) == "" {
		return 0, fmt.Errorf("%w: first word is blank", ErrInvalidArgument)
	}
	if strings.TrimSpace(b) == "" {
		return 0, fmt.Errorf("%w: second word is blank", ErrInvalidArgument)
	}
	return levenshtein.ComputeDistance(a, b), nil
}
