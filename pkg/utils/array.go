package utils

// Map applies a function to each element of a slice and returns a new slice
func Map[T, U any](slice []T, fn func(T) U) []U {
	result := make([]U, len(slice))
	for i, v := range slice {
		result[i] = fn(v)
	}
	return result
}

// Find returns the first element that satisfies the predicate, or zero value if not found
func Find[T any](slice []T, predicate func(T) bool) (T, bool) {
	for _, v := range slice {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Some returns true if at least one element satisfies the predicate
func Some[T any](slice []T, predicate func(T) bool) bool {
	_, ok := Find(slice, predicate)
	return ok
}

// Contains checks if a slice contains a specific value
func Contains[T comparable](slice []T, value T) bool {
	return Some(slice, func(v T) bool {
		return v == value
	})
}
