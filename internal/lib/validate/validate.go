package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gallery_shallery/internal/domain/models"

	"github.com/go-playground/validator/v10"
)

// New создает валидатор, который называет поля по их json-тегам
func New() *validator.Validate {
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

// AsValidationError переводит ошибку валидатора в *models.ValidationError.
// Берется первое нарушенное поле.
func AsValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &models.ValidationError{
			Field:  fe.Field(),
			Reason: reason(fe),
		}
	}

	return &models.ValidationError{Field: "request", Reason: err.Error()}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed on %q rule", fe.Tag())
	}
}
