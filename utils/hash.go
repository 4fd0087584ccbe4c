package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// accessCodeAlphabet avoids look-alike characters scorers would mistype.
const accessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateAccessCode returns a random scorer access code of the given length.
func GenerateAccessCode(length int) (string, error) {
	code := make([]byte, length)
	max := big.NewInt(int64(len(accessCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = accessCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// HashAccessCode hashes a scorer access code for storage.
func HashAccessCode(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckAccessCode compares a submitted access code against the stored hash.
func CheckAccessCode(hash, code string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	return err == nil
}
