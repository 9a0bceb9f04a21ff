package password

import (
	"errors"

	"foodies-api/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var ErrMismatch = errs.New("password does not match")

// hashCost stays at the library default; raise it only together with a
// rehash-on-login migration.
const hashCost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", errs.New("empty password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", errs.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// ComparePassword reports ErrMismatch for a wrong password and passes
// through any other bcrypt failure (malformed hash, cost overflow).
func ComparePassword(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return errs.Wrap(err, "failed to compare password")
	}
	return nil
}
