package validator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Instance returns the shared validator with the custom tags registered.
func Instance() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		Register(instance)
	})
	return instance
}

// Register adds the custom tags to v. Used for gin's binding engine as well.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}

// Struct validates s and flattens the failures into one readable message.
func Struct(s any) error {
	err := Instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	return errors.New(FormatErrors(verrs))
}

func FormatErrors(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, formatField(fe))
	}
	return strings.Join(parts, "; ")
}

func formatField(fe validator.FieldError) string {
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("поле %s обязательно", field)
	case "min", "gte":
		return fmt.Sprintf("поле %s должно быть не меньше %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("поле %s должно быть не больше %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("поле %s должно быть больше %s", field, fe.Param())
	case "notblank":
		return fmt.Sprintf("поле %s не может быть пустым", field)
	default:
		return fmt.Sprintf("поле %s не прошло проверку %s", field, fe.Tag())
	}
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
