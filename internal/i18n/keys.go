package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"

	// ErrKeyMenuItemNotFound is used when a combo references an unknown menu item.
	ErrKeyMenuItemNotFound = "error.menu_item_not_found"
	// ErrKeyCatalogUnavailable is used when menu prices cannot be read.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	ErrKeyTooManyItems       = "error.too_many_items"

	ErrKeyValidationPriceSource  = "error.validation.price_source"
	ErrKeyValidationDiscountKind = "error.validation.discount_kind"
)

// Informational message keys.
const (
	// MsgKeyPricesChanged takes the stored and current totals.
	MsgKeyPricesChanged = "message.prices_changed"
	MsgKeyPricesCurrent = "message.prices_current"
)
