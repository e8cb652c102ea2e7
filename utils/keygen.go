package utils

import (
	"math/rand"
)

var keyChars = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// GenerateRandomKey returns a random 10-character key for benchmarks and
// randomized tests.
func GenerateRandomKey() string {
	return GenerateRandomString(10)
}

// GenerateRandomString generates a random string of a given length
func GenerateRandomString(length int) string {
	b := make([]rune, length)
	for i := range b {
		b[i] = keyChars[rand.Intn(len(keyChars))]
	}
	return string(b)
}
