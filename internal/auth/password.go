// Package auth holds the credential manager and the server-side session
// capability. The service layer is the only caller of either; plaintext
// passwords never reach the repository.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor. Changing it only affects new hashes;
// verification reads the cost out of the stored hash.
const bcryptCost = 12

// HashPassword derives a salted one-way hash from a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
// bcrypt's comparison is constant-time.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
