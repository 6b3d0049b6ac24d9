package store

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes of its input.
const bcryptMaxInput = 72

// bcryptInput returns the bytes handed to bcrypt for password. Longer
// passwords are reduced to a base64 SHA-256 digest so every byte counts.
func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxInput {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// hashPassword bcrypt-hashes a plaintext seed password. Values that already
// are bcrypt hashes are kept as they are.
func hashPassword(password string, cost int) ([]byte, error) {
	if _, err := bcrypt.Cost([]byte(password)); err == nil {
		return []byte(password), nil
	}
	return bcrypt.GenerateFromPassword(bcryptInput(password), cost)
}

// CheckCredentials reports whether username exists and password matches its
// stored credential.
func (s *Store) CheckCredentials(username, password string) bool {
	s.mu.RLock()
	i, ok := s.userByName[username]
	var hash []byte
	if ok {
		hash = s.users[i].passwordHash
	}
	s.mu.RUnlock()

	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, bcryptInput(password)) == nil
}
