package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// ValidationError: тело запроса не прошло проверку схемы.
// Отличается от доменных ошибок: отдаётся как 422 со списком полей.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return serr.ErrInvalidInput.Error()
	}
	return fmt.Sprintf("%s: %s", serr.ErrInvalidInput, e.Fields[0].Message)
}

func (e *ValidationError) Unwrap() error {
	return serr.ErrInvalidInput
}

// Validator: обёртка над go-playground/validator,
// поля в ошибках называются так же, как в JSON.
type Validator struct {
	validate *validator.Validate
}

// NewValidator создаёт валидатор схем запросов.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct проверяет структуру по тегам validate.
// Возвращает *ValidationError или nil.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %q is required", fe.Field())
	default:
		return fmt.Sprintf("field %q failed on %q", fe.Field(), fe.Tag())
	}
}

// typeErrorFields превращает ошибку типа JSON ("email": 123) в ошибку схемы.
func typeErrorFields(err error) ([]models.FieldError, bool) {
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) {
		return nil, false
	}
	field := te.Field
	if field == "" {
		field = "body"
	}
	return []models.FieldError{{
		Field:   field,
		Tag:     "type",
		Message: fmt.Sprintf("field %q must be %s", field, jsonKind(te.Type)),
	}}, true
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Map, reflect.Struct:
		return "an object"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return t.Kind().String()
	}
}
