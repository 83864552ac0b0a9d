// ABOUTME: Struct-tag validation of settings before they are saved from the CLI
// ABOUTME: Reports offending fields by their JSON path (e.g. customApi.baseUrl)
package settings

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/harperreed/crmdash/models"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report json names so messages match what the user typed
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			return models.Platform(fl.Field().String()).IsValid()
		})
	})
	return validate
}

// Validate checks field formats (URLs, enum values). Blank fields pass:
// missing credentials are reported by the adapters, not here.
func Validate(s IntegrationSettings) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "IntegrationSettings.customApi.baseUrl"
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", path, fe.Value(), describeTag(fe)))
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "url":
		return "must be an absolute URL"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "platform":
		return "unknown platform"
	default:
		return fe.Tag()
	}
}
