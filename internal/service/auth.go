package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyVerifier matches API keys against bcrypt hashes so plaintext keys
// never live in configuration.
type APIKeyVerifier interface {
	Enabled() bool
	VerifyAPIKey(key string) bool
}

// BcryptAPIKeyVerifier implements APIKeyVerifier.
type BcryptAPIKeyVerifier struct {
	hashes [][]byte
	// verified caches digests of keys that already matched; bcrypt is slow on purpose.
	verified sync.Map
}

// NewAPIKeyVerifier creates a verifier over bcrypt hashes. Malformed hashes are skipped.
func NewAPIKeyVerifier(hashes []string) *BcryptAPIKeyVerifier {
	v := &BcryptAPIKeyVerifier{}
	for _, h := range hashes {
		h = strings.TrimSpace(h)
		if _, err := bcrypt.Cost([]byte(h)); err != nil {
			log.Warn().Err(err).Msg("ignoring malformed API key hash")
			continue
		}
		v.hashes = append(v.hashes, []byte(h))
	}
	return v
}

// Enabled reports whether any key is configured.
func (v *BcryptAPIKeyVerifier) Enabled() bool {
	return len(v.hashes) > 0
}

// VerifyAPIKey reports whether key matches one of the configured hashes.
func (v *BcryptAPIKeyVerifier) VerifyAPIKey(key string) bool {
	if key == "" {
		return false
	}

	sum := sha256.Sum256([]byte(key))
	digest := hex.EncodeToString(sum[:])
	if _, ok := v.verified.Load(digest); ok {
		return true
	}

	for _, h := range v.hashes {
		if bcrypt.CompareHashAndPassword(h, []byte(key)) == nil {
			v.verified.Store(digest, struct{}{})
			return true
		}
	}
	return false
}

// HashAPIKey returns the bcrypt hash to put in API_KEY_HASHES for key.
func HashAPIKey(key string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
