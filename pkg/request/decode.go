package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks request DTOs against their `validate` tags
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrBody is returned when the body is not valid JSON
var ErrBody = errors.New("invalid request body")

// DecodeJSON reads the JSON body into dst and validates it.
// The returned error message is safe to show to the client.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrBody
	}
	return Struct(dst)
}

// Struct validates dst and turns the first failure into a readable message
func Struct(dst interface{}) error {
	err := Validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "min":
		return fmt.Errorf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "alphanum":
		return fmt.Errorf("%s must only contain letters and digits", fe.Field())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}
