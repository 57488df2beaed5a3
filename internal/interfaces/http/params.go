package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
)

// pathID devuelve el parámetro :id si es un UUID válido.
func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if err := checkUUID("id", id); err != nil {
		return "", err
	}
	return id, nil
}

// checkUUID vacío = sin filtro; cualquier otro valor debe ser un UUID.
func checkUUID(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%w: %s %q no es un UUID", domain.ErrInvalidInput, field, value)
	}
	return nil
}
