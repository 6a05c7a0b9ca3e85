package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/combo-pricing-service/internal/domain/dto"
	"github.com/guttosm/combo-pricing-service/internal/i18n"
	"github.com/guttosm/combo-pricing-service/internal/middleware"
	"github.com/guttosm/combo-pricing-service/internal/service"
)

// Pricing endpoints are hit on every keystroke; pooling the envelopes keeps
// allocations flat.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} { return &dto.SuccessResponse{} },
	}
	errorResponsePool = sync.Pool{
		New: func() interface{} { return &dto.ErrorResponse{} },
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	return successResponsePool.Get().(*dto.SuccessResponse)
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	return errorResponsePool.Get().(*dto.ErrorResponse)
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// Validator is implemented by requests with checks binding tags cannot express.
type Validator interface {
	Validate() error
}

// BuildRequest binds the JSON body into T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate binds the JSON body and runs Validate when T implements it.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ResponseBuilder writes the success and error envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success writes data in the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	// gin serialises synchronously, so the envelope can go back right after.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK writes a 200 response.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated writes a 201 response.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with a translated error envelope. err, when set, is attached
// to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, nil, err)
}

// ErrorWithDetails is Error with per-field details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	if err != nil && statusCode >= http.StatusInternalServerError {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// BindError answers a request that failed binding or validation.
func (b *ResponseBuilder) BindError(err error) {
	var ve *dto.ValidationError
	switch {
	case errors.As(err, &ve):
		key := i18n.ErrKeyInvalidRequest
		if ve == dto.ErrMissingPriceSource {
			key = i18n.ErrKeyValidationPriceSource
		}
		b.ErrorWithDetails(http.StatusBadRequest, key, map[string]string{ve.Field: ve.Message}, nil)
	case hasRule(err, discountKindTag):
		b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationDiscountKind, validationDetails(err), nil)
	case validationDetails(err) != nil:
		b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, validationDetails(err), nil)
	default:
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil)
	}
}

// ServiceError maps service sentinels to status codes.
func (b *ResponseBuilder) ServiceError(err error) {
	switch {
	case errors.Is(err, service.ErrMenuItemNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyMenuItemNotFound, err)
	case errors.Is(err, service.ErrTooManyItems):
		b.Error(http.StatusBadRequest, i18n.ErrKeyTooManyItems, err)
	case errors.Is(err, service.ErrInvalidMenuItem):
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
	case errors.Is(err, service.ErrCatalogUnavailable), errors.Is(err, service.ErrRepositoryNotConfigured):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
