//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{"english message", ErrKeyInvalidRequest, "en", "Invalid request"},
		{"portuguese message", ErrKeyInvalidRequest, "pt", "Requisição inválida"},
		{"hindi message", ErrKeyMenuItemNotFound, "hi", "मेनू आइटम नहीं मिला"},
		{"empty locale defaults to english", ErrKeyInvalidRequest, "", "Invalid request"},
		{"unsupported locale falls back to english", ErrKeyInvalidRequest, "fr", "Invalid request"},
		{"unknown key returns key", "unknown.key", "en", "unknown.key"},
		{"unknown key in unsupported locale", "unknown.key", "fr", "unknown.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_Translatef(t *testing.T) {
	translator := NewTranslator()

	msg := translator.Translatef(MsgKeyPricesChanged, "en", 150.0, 170.5)

	assert.Equal(t, "Menu item prices have changed: combo was priced at 150.00, current total is 170.50", msg)
}

func TestEveryLocaleHasEveryKey(t *testing.T) {
	for locale, msgs := range defaultMessages {
		for key := range defaultMessages[DefaultLocale] {
			_, ok := msgs[key]
			assert.True(t, ok, "locale %s is missing %s", locale, key)
		}
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{"no header returns default", "", DefaultLocale},
		{"english header", "en", "en"},
		{"portuguese header", "pt", "pt"},
		{"hindi with region", "hi-IN", "hi"},
		{"multiple languages", "hi-IN,en;q=0.9,pt;q=0.8", "hi"},
		{"unsupported language defaults", "fr", DefaultLocale},
		{"case insensitive", "PT-br", "pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = req

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
