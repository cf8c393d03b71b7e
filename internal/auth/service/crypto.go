package service

//go:generate mockgen -destination=../../mocks/mock_crypto_service.go -package=mocks github.com/e-strategiapublica/sol-ms-auth/internal/auth/service CryptoService

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// CryptoService is the hashing/code primitive consumed by the timing-safe
// layer and the facade.
type CryptoService interface {
	Hash(plain string) (string, error)
	HashEquals(candidate, hash string) bool
	RandomNumericCode(length int) (string, error)
	IsCodeExpired(expiresAt time.Time) bool
}

type BcryptCryptoService struct {
	cost int
}

func NewCryptoService(cost int) *BcryptCryptoService {
	return &BcryptCryptoService{cost: cost}
}

func (c *BcryptCryptoService) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), c.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// HashEquals performs a fixed-cost bcrypt comparison.
func (c *BcryptCryptoService) HashEquals(candidate, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

// RandomNumericCode returns a zero-padded numeric code of the given length
// drawn from crypto/rand.
func (c *BcryptCryptoService) RandomNumericCode(length int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n), nil
}

func (c *BcryptCryptoService) IsCodeExpired(expiresAt time.Time) bool {
	return time.Now().After(expiresAt)
}
