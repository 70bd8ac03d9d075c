package common

// WipeByteArray overwrites the contents of b with zeros. Used to drop
// passwords typed at the terminal once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
