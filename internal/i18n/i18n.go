// Package i18n translates user-facing messages.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Translatef translates key and formats it with args.
func (t *Translator) Translatef(key, locale string, args ...interface{}) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// Supports reports whether locale has its own message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the locale from the Accept-Language header, e.g.
// "hi-IN,en;q=0.8" yields "hi". Only the first preference is considered.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	lang := strings.TrimSpace(strings.Split(strings.Split(acceptLang, ",")[0], ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	if GetTranslator().Supports(lang) {
		return lang
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:         "Invalid request",
		ErrKeyInvalidRequestBody:     "Invalid request body",
		ErrKeyInternalError:          "An unexpected error occurred",
		ErrKeyUnauthorized:           "Unauthorized",
		ErrKeyAPIKeyRequired:         "API key is required",
		ErrKeyInvalidAPIKey:          "Invalid API key",
		ErrKeyForbidden:              "Forbidden",
		ErrKeyNotFound:               "Not found",
		ErrKeyRateLimitExceeded:      "Too many requests, please try again later",
		ErrKeyInvalidToken:           "Invalid or expired token",
		ErrKeyTokenRequired:          "Authentication token is required",
		ErrKeyTimeout:                "Request timed out",
		ErrKeyMenuItemNotFound:       "Menu item not found",
		ErrKeyCatalogUnavailable:     "Menu prices are temporarily unavailable",
		ErrKeyTooManyItems:           "Too many items in combo",
		ErrKeyValidationPriceSource:  "original_price or items is required",
		ErrKeyValidationDiscountKind: "type must be one of none, percentage, fixed",

		MsgKeyPricesChanged: "Menu item prices have changed: combo was priced at %.2f, current total is %.2f",
		MsgKeyPricesCurrent: "Combo price matches current menu prices",
	},
	"pt": {
		ErrKeyInvalidRequest:         "Requisição inválida",
		ErrKeyInvalidRequestBody:     "Corpo da requisição inválido",
		ErrKeyInternalError:          "Ocorreu um erro inesperado",
		ErrKeyUnauthorized:           "Não autorizado",
		ErrKeyAPIKeyRequired:         "Chave de API é obrigatória",
		ErrKeyInvalidAPIKey:          "Chave de API inválida",
		ErrKeyForbidden:              "Proibido",
		ErrKeyNotFound:               "Não encontrado",
		ErrKeyRateLimitExceeded:      "Muitas requisições, tente novamente mais tarde",
		ErrKeyInvalidToken:           "Token inválido ou expirado",
		ErrKeyTokenRequired:          "Token de autenticação é obrigatório",
		ErrKeyTimeout:                "Tempo de requisição esgotado",
		ErrKeyMenuItemNotFound:       "Item do cardápio não encontrado",
		ErrKeyCatalogUnavailable:     "Preços do cardápio temporariamente indisponíveis",
		ErrKeyTooManyItems:           "Itens demais no combo",
		ErrKeyValidationPriceSource:  "original_price ou items é obrigatório",
		ErrKeyValidationDiscountKind: "type deve ser none, percentage ou fixed",

		MsgKeyPricesChanged: "Os preços do cardápio mudaram: o combo custava %.2f, o total atual é %.2f",
		MsgKeyPricesCurrent: "O preço do combo confere com o cardápio atual",
	},
	"hi": {
		ErrKeyInvalidRequest:         "अमान्य अनुरोध",
		ErrKeyInvalidRequestBody:     "अमान्य अनुरोध बॉडी",
		ErrKeyInternalError:          "एक अनपेक्षित त्रुटि हुई",
		ErrKeyUnauthorized:           "अनधिकृत",
		ErrKeyAPIKeyRequired:         "API कुंजी आवश्यक है",
		ErrKeyInvalidAPIKey:          "अमान्य API कुंजी",
		ErrKeyForbidden:              "निषिद्ध",
		ErrKeyNotFound:               "नहीं मिला",
		ErrKeyRateLimitExceeded:      "बहुत अधिक अनुरोध, कृपया बाद में पुनः प्रयास करें",
		ErrKeyInvalidToken:           "अमान्य या समाप्त टोकन",
		ErrKeyTokenRequired:          "प्रमाणीकरण टोकन आवश्यक है",
		ErrKeyTimeout:                "अनुरोध का समय समाप्त हो गया",
		ErrKeyMenuItemNotFound:       "मेनू आइटम नहीं मिला",
		ErrKeyCatalogUnavailable:     "मेनू कीमतें अस्थायी रूप से उपलब्ध नहीं हैं",
		ErrKeyTooManyItems:           "कॉम्बो में बहुत अधिक आइटम",
		ErrKeyValidationPriceSource:  "original_price या items आवश्यक है",
		ErrKeyValidationDiscountKind: "type none, percentage या fixed होना चाहिए",

		MsgKeyPricesChanged: "मेनू आइटम की कीमतें बदल गई हैं: कॉम्बो की कीमत %.2f थी, वर्तमान कुल %.2f है",
		MsgKeyPricesCurrent: "कॉम्बो की कीमत वर्तमान मेनू कीमतों से मेल खाती है",
	},
}
