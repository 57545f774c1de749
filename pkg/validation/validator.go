package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Package validation wraps a standalone validator.v10 instance used by the
// application layer to check candidate records before they touch storage.
// Error texts follow the Joi-style pattern `"<field>" <constraint>` so the
// details list surfaced to clients is stable and human readable.

var (
	once sync.Once
	v    *validator.Validate
)

// Validate returns the shared validator instance.
// - Field names in errors come from JSON tags.
// - Aliases cover the compound constraints of the user schema.
func Validate() *validator.Validate {
	once.Do(func() {
		v = validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterAlias("uname", "min=3,max=20")
	})
	return v
}

// Struct validates s and returns one message per failed field, nil when valid.
func Struct(s interface{}) []string {
	err := Validate().Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, `"`+fe.Field()+`" `+messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "uname", "min", "max":
		// both bounds of the username alias collapse into the canonical text
		return "length must be between 3 and 20 characters long"
	default:
		if fe.Param() != "" {
			return "failed on '" + fe.Tag() + "=" + fe.Param() + "'"
		}
		return "failed on '" + fe.Tag() + "'"
	}
}
