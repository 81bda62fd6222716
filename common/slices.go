package common

import (
	"fmt"
	"strings"
)

func Map[I, O any](p func(I) O, xs []I) []O {
	result := make([]O, len(xs))
	for i, x := range xs {
		result[i] = p(x)
	}
	return result
}

// MapError is Map for element functions that can fail; the first failure
// aborts the whole mapping.
func MapError[I, O any](p func(I) (O, error), xs []I) ([]O, error) {
	result := make([]O, len(xs))
	for i, x := range xs {
		o, err := p(x)
		if err != nil {
			return nil, err
		}
		result[i] = o
	}
	return result, nil
}

func Join[T fmt.Stringer](xs []T, sep string) string {
	return strings.Join(Map(func(x T) string { return x.String() }, xs), sep)
}
