package pkg

import (
	"crypto/rand"
	"errors"
	"math/big"
	"unsafe"
)

const randomStringAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

// GenerateRandomString returns a securely generated alphanumeric string of length s.
// Used for session tokens and OAuth state values.
func GenerateRandomString(s int) (string, error) {
	if s < 1 {
		return "", errors.New("length must be greater than 0")
	}

	alphabetLen := big.NewInt(int64(len(randomStringAlphabet)))
	b := make([]byte, s)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		b[i] = randomStringAlphabet[n.Int64()]
	}
	return string(b), nil
}
