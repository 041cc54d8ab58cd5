package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FieldErrors - поле -> нарушенный тег, для деталей ответа об ошибке
func FieldErrors(err error) map[string]interface{} {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
