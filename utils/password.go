package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Hashes are stored as "pbkdf2:sha256:<iterations>$<salt>$<hash>" so records
// written by the previous deployment of this app keep verifying.
const (
	pbkdf2Iterations = 600000
	saltLength       = 16
	keyLength        = 32
)

func HashPassword(plain string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(plain), salt, pbkdf2Iterations, keyLength, sha256.New)

	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s",
		pbkdf2Iterations,
		hex.EncodeToString(salt),
		hex.EncodeToString(key),
	), nil
}

// CheckPassword verifies plain against a stored hash. Malformed hashes
// verify as false rather than erroring; the caller treats both the same.
func CheckPassword(stored, plain string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 {
		return false
	}

	method := strings.Split(parts[0], ":")
	if len(method) != 3 || method[0] != "pbkdf2" || method[1] != "sha256" {
		return false
	}
	iterations, err := strconv.Atoi(method[2])
	if err != nil || iterations <= 0 {
		return false
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(plain), salt, iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(key, expected) == 1
}
