package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs tag validation and reports failing fields by their env key
func validateStruct(s interface{}, envKeys map[string]string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := envKeys[fe.Field()]
		if key == "" {
			key = fe.Field()
		}
		if fe.Tag() == "required" {
			msgs = append(msgs, fmt.Sprintf("%s is required", key))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s is invalid (%s=%s)", key, fe.Tag(), fe.Param()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
