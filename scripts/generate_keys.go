//go:build ignore

// Generates a JWT verification secret and an API key with its bcrypt hash.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/guttosm/combo-pricing-service/internal/service"
)

func generateSecureKey(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
	os.Exit(1)
}

func main() {
	fmt.Println("=== Combo Pricing Key Generator ===")
	fmt.Println()

	// Must match the identity provider's signing secret.
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fail("JWT secret", err)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fail("API key", err)
	}
	apiKeyHash, err := service.HashAPIKey(apiKey)
	if err != nil {
		fail("API key hash", err)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# JWT verification")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API key hashes, comma separated; single quotes stop $ expansion")
	fmt.Printf("API_KEY_HASHES='%s'\n", apiKeyHash)
	fmt.Println()
	fmt.Println("Hand this key to the console, it is not stored anywhere:")
	fmt.Printf("X-API-Key: %s\n", apiKey)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these values to version control")
	fmt.Println("- Use different keys for each environment")
}
