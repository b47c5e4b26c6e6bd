package litetable

// Bytes converts an identifier or value to its raw byte form. Strings are encoded as UTF-8 and
// carry no type information.
func Bytes(s string) []byte {
	return []byte(s)
}

// String is the inverse of Bytes.
func String(b []byte) string {
	return string(b)
}
