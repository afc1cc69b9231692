package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/potion"
)

// Input boundaries shared by request structs
const (
	MaxNameLength    = 100
	MaxAnalyzeLength = 2000
	MaxReactants     = 16
	MaxRestrictions  = 32
	MaxVariantIndex  = 64
)

// Validator checks request structs against their validate tags. Field
// names in its errors are the JSON names clients send.
type Validator struct {
	validate *validator.Validate
}

var (
	sharedValidator *Validator
	validatorOnce   sync.Once
)

// GetValidator returns the process-wide validator
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("selectiontype", validateSelectionType)
		_ = v.RegisterValidation("filtercategory", validateFilterCategory)
		sharedValidator = &Validator{validate: v}
	})
	return sharedValidator
}

func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name)
	}
	return name
}

// fieldMessages maps a failed tag to its client message. %s receives the
// tag parameter.
var fieldMessages = map[string]string{
	"required":       "This field is required",
	"selectiontype":  "Must be binder, catalyst or reactant",
	"filtercategory": "Must be all, binder, catalyst or reactant",
	"max":            "Must be at most %s",
	"min":            "Must be at least %s",
	"excludesall":    "Contains invalid characters",
}

const fallbackFieldMessage = "Invalid value"

// FormatValidationError turns validator errors into a field to message map.
// Anything that is not a validation failure becomes a single "error" entry.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Tag()]
		switch {
		case !ok:
			msg = fallbackFieldMessage
		case strings.Contains(msg, "%s"):
			msg = fmt.Sprintf(msg, fe.Param())
		}
		out[fe.Field()] = msg
	}
	return out
}

// validateSelectionType accepts a selection slot name in any case
func validateSelectionType(fl validator.FieldLevel) bool {
	_, err := potion.ParseSelectionType(fl.Field().String())
	return err == nil
}

// validateFilterCategory accepts "all", empty, or a selection slot name
func validateFilterCategory(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" || strings.EqualFold(v, domain.FilterCategoryAll) {
		return true
	}
	_, err := potion.ParseFilterCategory(v)
	return err == nil
}
