package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var rulePrefixRegexp = regexp.MustCompile(`^[A-Z][A-Z0-9-]*$`)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "nefield":
		return fmt.Sprintf("must differ from '%s'", e.Param())
	case "file_ext":
		return "must be a file extension starting with '.'"
	case "rule_prefix":
		return "must be an uppercase rule tag [A-Z0-9-], e.g. DOMAIN-SUFFIX or IP-CIDR"
	case "rule_template":
		return "must contain the {{cidr}} placeholder"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Dot-notation field path (e.g., "general.list_extension")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("file_ext", validateFileExt); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("rule_prefix", validateRulePrefix); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("rule_template", validateRuleTemplate); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: file extension starting with a dot and nothing else dotted
func validateFileExt(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < 2 || !strings.HasPrefix(value, ".") {
		return false
	}
	return !strings.Contains(value[1:], ".")
}

// Custom validator: uppercase rule tag form
func validateRulePrefix(fl validator.FieldLevel) bool {
	return rulePrefixRegexp.MatchString(fl.Field().String())
}

// Custom validator: IP rule template must emit the network address
func validateRuleTemplate(fl validator.FieldLevel) bool {
	return strings.Contains(fl.Field().String(), "{{cidr}}")
}

// convertValidatorErrors converts validator.ValidationErrors into our error list
func convertValidatorErrors(err error, sectionPath string) ValidationErrors {
	var out ValidationErrors

	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out = append(out, ValidationError{
			FieldPath: sectionPath,
			Message:   err.Error(),
		})
		return out
	}

	for _, e := range validatorErrs {
		fieldPath := e.Field()
		if sectionPath != "" {
			fieldPath = sectionPath + "." + fieldPath
		}
		out = append(out, ValidationError{
			FieldPath: fieldPath,
			Message:   getValidationMessage(e),
		})
	}

	return out
}
