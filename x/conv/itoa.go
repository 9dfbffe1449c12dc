package conv

// AppendInt appends the base-10 form of n to dst. No fmt/strconv dependency,
// so the renderer can build its per-frame strings in a reused buffer.
func AppendInt(dst []byte, n int) []byte {
	var tmp [20]byte
	i := len(tmp)
	u := uint64(n)
	if n < 0 {
		u = uint64(-int64(n))
	}
	if u == 0 {
		i--
		tmp[i] = '0'
	}
	for u > 0 {
		i--
		tmp[i] = byte('0' + u%10)
		u /= 10
	}
	if n < 0 {
		i--
		tmp[i] = '-'
	}
	return append(dst, tmp[i:]...)
}

// Itoa is AppendInt into a fresh string.
func Itoa(n int) string { return string(AppendInt(nil, n)) }
