package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationErrors flattens validator failures into the enumerated message list
// returned in 400 bodies
func validationErrors(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			out = append(out, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		case "min":
			out = append(out, fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
		case "max":
			out = append(out, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		case "len":
			out = append(out, fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param()))
		case "numeric":
			out = append(out, fmt.Sprintf("%s must contain only digits", fe.Field()))
		case "oneof":
			out = append(out, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			out = append(out, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return out
}
