package models

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// OwnerCredentials holds the single configured credential pair. The password
// is hashed once at startup so the plaintext never sticks around in memory.
type OwnerCredentials struct {
	Username     string
	passwordHash []byte
}

// NewOwnerCredentials hashes the configured password and returns the owner credentials
func NewOwnerCredentials(username, password string) (*OwnerCredentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &OwnerCredentials{Username: username, passwordHash: hash}, nil
}

// Verify reports whether the given pair matches the configured owner credentials
func (o *OwnerCredentials) Verify(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(o.Username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(o.passwordHash, []byte(password)) == nil
	return usernameMatch && passwordMatch
}
