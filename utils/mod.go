package utils

// Index returns the position of item in slice, or -1 if absent.
func Index[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Contains reports whether slice holds item.
func Contains[T comparable](slice []T, item T) bool {
	return Index(slice, item) >= 0
}
