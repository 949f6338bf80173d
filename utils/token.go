package utils

import (
	"math/rand"
	"time"
)

// GenerateResetCode returns a numeric code for password reset emails.
func GenerateResetCode(length int) string {
	const digits = "0123456789"
	rand.Seed(time.Now().UnixNano())

	code := make([]byte, length)
	for i := range code {
		code[i] = digits[rand.Intn(len(digits))]
	}
	return string(code)
}
