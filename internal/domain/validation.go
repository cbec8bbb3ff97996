package domain

import (
	"errors"

	"github.com/google/uuid"
)

// isUUID é uma regra ozzo-validation para IDs textuais; vazio é tratado por validation.Required.
func isUUID(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return errors.New("deve ser um UUID válido")
	}
	return nil
}
