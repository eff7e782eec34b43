package handler

import (
	"fmt"

	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func iso8601(fl validator.FieldLevel) bool {
	return model.ParseTimestamp(fl.Field().String()) == nil
}

// RegisterValidation registers custom binding validations with Gin's validator engine.
func RegisterValidation() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("iso8601", iso8601)
	}
	return fmt.Errorf("error getting validation engine")
}
