package middleware

import (
	"examdrill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateQuestionID validates the id query parameter of the mutator routes
func (vm *ValidationMiddleware) ValidateQuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Query("id")

		if errors := vm.validator.ValidateQuestionID(id); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		// Store validated value in context for handlers to use
		c.Locals("validated_question_id", id)
		return c.Next()
	}
}
