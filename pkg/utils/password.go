package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher stores and checks login passwords. With hashing disabled
// passwords are kept and compared as plain text, which is what existing
// deployments of the zoo database contain.
type PasswordHasher struct {
	Hash bool
}

func (p PasswordHasher) Encode(password string) (string, error) {
	if !p.Hash {
		return password, nil
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (p PasswordHasher) Matches(password, stored string) bool {
	if !p.Hash {
		return password == stored
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
