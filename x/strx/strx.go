package strx

// Coalesce returns s, or d when s is empty.
func Coalesce(s, d string) string {
	if s == "" {
		return d
	}
	return s
}

// Truncate cuts s to at most n bytes. Display text is ASCII.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
