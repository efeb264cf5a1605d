package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a plaintext password into its stored form and checks a
// candidate against it.
type Hasher interface {
	Hash(pw string) (string, error)
	Check(hash, pw string) bool
}

// SHA256Hasher stores the hex sha256 digest of the password. Unsalted and
// deterministic: equal passwords produce equal hashes. Kept as the default for
// compatibility with existing credential data; prefer BcryptHasher.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(pw string) (string, error) {
	sum := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Check(hash, pw string) bool {
	got, _ := h.Hash(pw)
	return subtle.ConstantTimeCompare([]byte(got), []byte(hash)) == 1
}

type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher clamps cost into bcrypt's accepted range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Hash(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), h.Cost)
	return string(b), err
}

func (h *BcryptHasher) Check(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// NewHasher picks a hasher by config name ("sha256" or "bcrypt").
func NewHasher(name string, cost int) (Hasher, error) {
	switch name {
	case "", "sha256":
		return SHA256Hasher{}, nil
	case "bcrypt":
		return NewBcryptHasher(cost), nil
	default:
		return nil, fmt.Errorf("unknown password hash %q", name)
	}
}
