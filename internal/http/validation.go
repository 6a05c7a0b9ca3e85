package http

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/guttosm/combo-pricing-service/internal/pricing"
)

// discountKindTag is the binding tag accepting none, percentage or fixed.
const discountKindTag = "discount_kind"

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules on gin's validator and
// makes validation errors report JSON field names. Safe to call repeatedly.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation(discountKindTag, func(fl validator.FieldLevel) bool {
			return pricing.IsValidDiscountKind(fl.Field().String())
		})
	})
}

func jsonFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// validationDetails flattens binding errors into field -> rule pairs.
func validationDetails(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	details := make(map[string]string, len(ve))
	for _, fe := range ve {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[field] = rule
	}
	return details
}

// hasRule reports whether a binding error failed on tag.
func hasRule(err error, tag string) bool {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return false
	}
	for _, fe := range ve {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
