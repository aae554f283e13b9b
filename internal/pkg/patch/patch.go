package patch

// Coalesce returns *ptr when ptr is set, otherwise fallback. Partial updates
// use it to merge optional request fields onto the current value.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
