package str

// Mask keeps the first visible runes of s and replaces the rest with "***".
// Strings no longer than visible are masked entirely.
func Mask(s string, visible int) string {
	runes := []rune(s)
	if visible < 0 || len(runes) <= visible {
		return "***"
	}
	return string(runes[:visible]) + "***"
}
