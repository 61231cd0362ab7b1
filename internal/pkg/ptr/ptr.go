package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// TrimmedOrNil maps an empty string pointer to nil after the caller has trimmed it.
func TrimmedOrNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
