package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrorMessage turns a gin binding error into something a client can act on.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldErrorMessage(fe))
		}
		return strings.Join(msgs, "; ")
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "Invalid JSON body"
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("Invalid type for field %s", typeErr.Field)
	}
	return "Invalid request: " + err.Error()
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	if ns := fe.Namespace(); strings.Contains(ns, "[") {
		// keep the element index for rows of a restore payload
		field = ns[strings.Index(ns, ".")+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "hexcolor":
		return field + " must be a hex color such as #1a2b3c"
	}
	return fmt.Sprintf("%s failed on %s", field, fe.Tag())
}
