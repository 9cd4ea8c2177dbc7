// Package passwords hashes and verifies user passwords. New hashes use the
// configured algorithm; verification accepts either supported format so the
// algorithm can be switched without invalidating stored credentials.
package passwords

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

const (
	AlgoBcrypt   = "bcrypt"
	AlgoArgon2id = "argon2id"
)

// BcryptCost is the work factor for new bcrypt hashes.
const BcryptCost = 10

const argon2idPrefix = "$argon2id$"

// ErrTooLong is returned for passwords bcrypt cannot hash (over 72 bytes).
var ErrTooLong = bcrypt.ErrPasswordTooLong

type Hasher struct {
	algo         string
	bcryptCost   int
	argon2Params *argon2id.Params

	dummyOnce sync.Once
	dummyHash string
}

func New(algo string) (*Hasher, error) {
	switch algo {
	case "", AlgoBcrypt:
		return &Hasher{algo: AlgoBcrypt, bcryptCost: BcryptCost}, nil
	case AlgoArgon2id:
		return &Hasher{algo: AlgoArgon2id, argon2Params: argon2id.DefaultParams}, nil
	default:
		return nil, fmt.Errorf("unknown password hash algorithm: %s", algo)
	}
}

func (h *Hasher) Algo() string {
	return h.algo
}

// Hash returns a salted one-way hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	if h.algo == AlgoArgon2id {
		hash, err := argon2id.CreateHash(password, h.argon2Params)
		if err != nil {
			return "", fmt.Errorf("argon2id hash: %w", err)
		}
		return hash, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrTooLong
		}
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A mismatch is not an error;
// an error means hash could not be parsed.
func (h *Hasher) Verify(hash, password string) (bool, error) {
	if strings.HasPrefix(hash, argon2idPrefix) {
		match, _, err := argon2id.CheckHash(password, hash)
		if err != nil {
			return false, fmt.Errorf("argon2id check: %w", err)
		}
		return match, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("bcrypt check: %w", err)
	}
}

// VerifyDummy runs a verification of the configured algorithm against a
// throwaway hash and discards the result. Call it where no stored hash exists
// so the request costs the same as a real check.
func (h *Hasher) VerifyDummy(password string) {
	h.dummyOnce.Do(func() {
		// The hash only needs the right algorithm and cost.
		h.dummyHash, _ = h.Hash("dummy password")
	})
	_, _ = h.Verify(h.dummyHash, password)
}
