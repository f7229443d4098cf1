package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mallbook/config"
	"mallbook/shared/constant"
	"mallbook/shared/failure"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

const bytesPerMB = 1024 * 1024

var validate *val.Validate

// uploadedFile unwraps multipart uploads whether the field holds a value or a pointer.
func uploadedFile(field val.FieldLevel) (*multipart.FileHeader, bool) {
	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return &file, true
	case *multipart.FileHeader:
		return file, file != nil
	default:
		return nil, false
	}
}

// registerMimetypeValidation checks the part's declared Content-Type against a space separated list.
func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := uploadedFile(field)
	if !ok {
		return false
	}

	allowedTypes := strings.Fields(field.Param())

	return slices.Contains(allowedTypes, file.Header.Get(constant.RequestHeaderContentType))
}

// registerFileSizeValidation caps an upload at param megabytes.
func registerFileSizeValidation(field val.FieldLevel) bool {
	file, ok := uploadedFile(field)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(file.Size) <= maxSizeMB*bytesPerMB
}

// registerClockValidation accepts a 24h "HH:MM" wall clock.
func registerClockValidation(field val.FieldLevel) bool {
	value := field.Field().String()
	if len(value) != len(constant.ClockFormat) {
		return false
	}

	_, err := time.Parse(constant.ClockFormat, value)

	return err == nil
}

// registerDateValidation accepts a calendar date in "YYYY-MM-DD".
func registerDateValidation(field val.FieldLevel) bool {
	_, err := time.Parse(constant.DateOnlyFormat, field.Field().String())

	return err == nil
}

// rulesValidation delegates to the field's own Validate method, which may take the config.
func rulesValidation(field val.FieldLevel) bool {
	method := field.Field().MethodByName("Validate")
	if !method.IsValid() {
		return false
	}

	var result []reflect.Value

	switch method.Type().NumIn() {
	case 0:
		result = method.Call(nil)
	case 1:
		result = method.Call([]reflect.Value{reflect.ValueOf(config.Get())})
	default:
		return false
	}

	return len(result) > 0 && result[0].IsNil()
}

func emptyValidation(field val.FieldLevel) bool {
	return field.Field().IsZero()
}

// jsonName reports fields by their wire name so messages match the request body.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	custom := map[string]val.Func{
		"rules":       rulesValidation,
		"empty":       emptyValidation,
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"clock":       registerClockValidation,
		"date":        registerDateValidation,
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	validate.RegisterTagNameFunc(jsonName)
}

// Validate decodes a JSON body into data and validates it. Both failures are 400s.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	return asFailure(validate.Struct(data))
}

func ValidateVar(field any, tag string) error {
	return asFailure(validate.Var(field, tag))
}

func asFailure(err error) error {
	if err == nil {
		return nil
	}

	return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
}
