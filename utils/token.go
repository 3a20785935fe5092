package utils

import "crypto/rand"

// GenerateRandomToken returns a random alphanumeric code, e.g. a password
// reset code. Reset codes gate account takeover, so the bytes come from
// crypto/rand.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}
