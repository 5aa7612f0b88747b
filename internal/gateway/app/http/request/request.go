// Package request разбирает тела и параметры HTTP-запросов.
package request

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"studymate/internal/gateway/app/dto"
	"studymate/internal/shared"
)

// Ошибки разбора запроса.
var (
	ErrInvalidBody = fmt.Errorf("%w: invalid request body", shared.ErrValidation)
	ErrInvalidID   = fmt.Errorf("%w: id must be a UUID", shared.ErrValidation)
)

// Validator - тело запроса, умеющее проверить собственные поля.
type Validator interface {
	Validate() error
}

// Body разбирает JSON тело и проверяет его. Любая ошибка разбора считается ошибкой валидации.
func Body(c fiber.Ctx, out Validator) error {
	if err := c.Bind().JSON(out); err != nil {
		if errors.Is(err, dto.ErrInvalidDate) {
			return dto.ErrInvalidDate
		}
		return ErrInvalidBody
	}
	return out.Validate()
}

// UUIDParam возвращает параметр пути в каноническом виде UUID.
func UUIDParam(c fiber.Ctx, name string) (string, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}
