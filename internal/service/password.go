package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstrae el hash unidireccional de contraseñas para que los
// tests puedan sustituir una implementación rápida.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

const bcryptCost = 10

type bcryptHasher struct{}

// NewBcryptHasher devuelve el hasher de producción (bcrypt, costo 10).
func NewBcryptHasher() PasswordHasher {
	return bcryptHasher{}
}

func (bcryptHasher) Hash(plaintext string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

func (bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
