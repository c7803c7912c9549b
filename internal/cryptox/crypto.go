// Package cryptox holds the credential hashing primitives.
package cryptox

import "golang.org/x/crypto/bcrypt"

// bcrypt only hashes the first 72 bytes; longer input is clipped so that
// hashing never fails on arbitrary plaintext. Minimum-length policy is the
// caller's concern, not enforced here.
const maxPasswordBytes = 72

func clip(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword derives a salted bcrypt digest from the plaintext. Each call
// embeds a fresh random salt, so equal plaintexts produce distinct digests.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(clip(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the bcrypt digest. The
// comparison is constant-time; a malformed digest yields false, never an
// error.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), clip(plaintext)) == nil
}
