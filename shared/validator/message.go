package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

type describe func(field, param string) string

func bounded(verb string) describe {
	return func(field, param string) string {
		return fmt.Sprintf("%s must be %s %s", field, verb, param)
	}
}

func fixed(text string) describe {
	return func(field, _ string) string {
		return field + " " + text
	}
}

// descriptions turns a failed tag into a message a client can act on.
var descriptions = map[string]describe{
	"required":    fixed("is required"),
	"gte":         bounded("greater than or equal to"),
	"min":         bounded("greater than or equal to"),
	"lte":         bounded("less than or equal to"),
	"max":         bounded("less than or equal to"),
	"oneof":       bounded("one of"),
	"mimetypes":   bounded("one of"),
	"email":       fixed("must be a valid email address"),
	"clock":       fixed("must be a time in HH:MM format"),
	"date":        fixed("must be a date in YYYY-MM-DD format"),
	"rules":       fixed("is invalid"),
	"uuid":        fixed("must be a valid UUID"),
	"url":         fixed("must be a valid URL"),
	"maxfilesize": func(field, param string) string { return fmt.Sprintf("%s must not exceed %s MB", field, param) },
}

// message reports the first failed field that has a description.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fe := range fieldErrors {
		if text, ok := descriptions[fe.Tag()]; ok {
			return text(fe.Field(), fe.Param())
		}
	}

	return fieldErrors.Error()
}
