// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of real scalar types supported by the slice helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// MaxSlice returns the maximum value in the slice.
// The method panics if the slice is empty.
func MaxSlice[V constraints.Ordered](slice []V) (max V) {
	max = slice[0]
	for _, c := range slice[1:] {
		if c > max {
			max = c
		}
	}
	return
}

// MinSlice returns the minimum value in the slice.
// The method panics if the slice is empty.
func MinSlice[V constraints.Ordered](slice []V) (min V) {
	min = slice[0]
	for _, c := range slice[1:] {
		if c < min {
			min = c
		}
	}
	return
}

// SumSlice returns the sum of the values in the slice.
func SumSlice[V Number](slice []V) (sum V) {
	for _, c := range slice {
		sum += c
	}
	return
}
