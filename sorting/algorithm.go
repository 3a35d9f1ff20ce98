package sorting

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/amp-labs/daily-dev-lab/errors"
)

// Algorithm names one of the sorts in this package.
type Algorithm string

const (
	AlgorithmBubble Algorithm = "bubble"
	AlgorithmQuick  Algorithm = "quick"
)

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBubble, AlgorithmQuick}
}

func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm turns a user supplied name into an Algorithm. Matching
// ignores case and surrounding whitespace.
func ParseAlgorithm(name string) (Algorithm, error) {
	algo := Algorithm(strings.ToLower(strings.TrimSpace(name)))

	switch algo {
	case AlgorithmBubble, AlgorithmQuick:
		return algo, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, name)
	}
}

// Sort returns a sorted copy of seq using the given algorithm.
func Sort[S ~[]E, E cmp.Ordered](algo Algorithm, seq S) (S, error) {
	switch algo {
	case AlgorithmBubble:
		return Bubble(seq), nil
	case AlgorithmQuick:
		return Quick(seq), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, string(algo))
	}
}
