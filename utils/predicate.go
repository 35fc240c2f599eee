// Package utils holds small generic predicates shared by the configuration layers.
package utils

// Number is any built-in integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within [lo,hi], both inclusive.
// NaN is never in range.
func IsInRange[T Number](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

// IsPositive checks if a value is strictly greater than zero.
// NaN is not positive.
func IsPositive[T Number](value T) bool {
	return value > 0
}
