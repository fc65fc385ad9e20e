package schedule

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm[T constraints.Integer](a, b T) T {
	return a / gcd(a, b) * b
}

// Hyperperiod returns the least common multiple of all task periods,
// the smallest window containing a whole number of releases of every
// task. It is undefined for an empty period set.
func Hyperperiod(periods []int) (int, error) {
	if len(periods) == 0 {
		return 0, fmt.Errorf("hyperperiod is undefined for an empty period set")
	}

	hyper := 1
	for _, period := range periods {
		if period <= 0 {
			return 0, fmt.Errorf("period must be greater than 0, got %d", period)
		}
		hyper = lcm(hyper, period)
	}

	return hyper, nil
}
