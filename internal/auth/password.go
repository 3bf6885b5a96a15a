// Package auth is the authentication collaborator: it turns plaintext
// passwords into opaque credential blobs, issues and verifies bearer tokens,
// and gates HTTP routes by principal role. The directory core never sees a
// plaintext password or a token.
package auth

import "golang.org/x/crypto/bcrypt"

// BcryptCost balances hashing latency against brute-force resistance.
const BcryptCost = 12

// HashPassword creates the opaque credential blob stored on a user record.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored credential.
func VerifyPassword(password, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(password)) == nil
}
