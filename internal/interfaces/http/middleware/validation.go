package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/storekit/backend/internal/domain/shipping"
)

// SetupValidator configures gin's validator: JSON tag names in error
// messages and the custom rate-table-type tag used by shipping requests.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	// ratetabletype accepts the known rate table keyings
	_ = v.RegisterValidation("ratetabletype", func(fl validator.FieldLevel) bool {
		return shipping.RateTableType(fl.Field().String()).IsValid()
	})
}
