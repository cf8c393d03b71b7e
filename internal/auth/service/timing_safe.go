package service

import (
	"crypto/subtle"
	"fmt"
	"strings"
)

// dummyPassword seeds the pre-computed hash used when no real hash exists.
// Hashing it with the same cost as real hashes keeps the comparison cost
// identical for "no such user", "no password configured" and "wrong password".
const dummyPassword = "timing-safe-dummy-password"

// TimingSafeComparator makes credential comparison cost independent of
// whether the subject exists or has the credential configured.
type TimingSafeComparator struct {
	crypto    CryptoService
	dummyHash string
	dummyCode string
}

func NewTimingSafeComparator(crypto CryptoService, codeLength int) (*TimingSafeComparator, error) {
	dummyHash, err := crypto.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to pre-compute dummy hash: %w", err)
	}

	return &TimingSafeComparator{
		crypto:    crypto,
		dummyHash: dummyHash,
		dummyCode: strings.Repeat("0", codeLength),
	}, nil
}

// SafeComparePassword always runs a full bcrypt comparison, substituting the
// dummy hash when the subject is absent or has no stored hash. The result is
// ANDed with subjectExists so the nonexistent-user path returns false without
// a branch before the comparison.
func (t *TimingSafeComparator) SafeComparePassword(candidate string, storedHash *string, subjectExists bool) bool {
	hash := t.dummyHash
	if subjectExists && storedHash != nil && *storedHash != "" {
		hash = *storedHash
	}

	valid := t.crypto.HashEquals(candidate, hash)

	return subjectExists && valid
}

// SafeCompareEmailCode mirrors SafeComparePassword for one-time codes, using a
// length-check-then-XOR-accumulate comparison with no early exit.
func (t *TimingSafeComparator) SafeCompareEmailCode(candidate string, storedCode *string, subjectExists bool) bool {
	code := t.dummyCode
	if subjectExists && storedCode != nil && *storedCode != "" {
		code = *storedCode
	}

	valid := subtle.ConstantTimeCompare([]byte(candidate), []byte(code)) == 1

	return subjectExists && valid
}
