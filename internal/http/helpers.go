package http

func grow(buf []byte) []byte {
	temp := make([]byte, len(buf)*2)
	copy(temp, buf)
	return temp
}

func getKeys[T comparable, V any](m map[T]V) []T {
	keys := make([]T, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}
