package core

import "strconv"

const hashModulus = 1000000007

// HashContent returns a stable base-36 digest of content.
func HashContent(content []byte) string {
	result := 0
	for _, b := range content {
		result = (result*31 + int(b)) % hashModulus
	}
	return strconv.FormatInt(int64(result), 36)
}

// ShortHash truncates HashContent to n characters.
func ShortHash(content []byte, n int) string {
	h := HashContent(content)
	if len(h) > n {
		return h[:n]
	}
	return h
}
