package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// validate is the singleton validator instance.
var validate *govalidator.Validate

// trans is the singleton English translator for validation errors.
var trans ut.Translator

// Setup registers the validator with English translations.
// Call once during application startup.
func Setup() {
	validate = govalidator.New()

	// Use JSON tag name for field names in error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register English translations.
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, trans)
}

// TranslateErrors takes a validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// Check validates dst's struct tags.
// Returns nil on success or a translated field error map on failure.
func Check(dst interface{}) map[string]string {
	if validate == nil {
		Setup()
	}
	if err := validate.Struct(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
