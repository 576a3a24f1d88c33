package presenters

import (
	"Cocktail-Catalog/domain"

	"github.com/gofiber/fiber/v2"
)

type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse writes data as the bare JSON body. With nil data the
// message is sent as {"message": ...} instead.
func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	if data == nil {
		return c.Status(code).JSON(domain.MessageResponse{Message: message})
	}
	return c.Status(code).JSON(data)
}

// ErrorResponse writes {"error": err, "message": message}.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	body := ErrorBody{Error: message}
	if err != nil {
		body = ErrorBody{Error: err.Error(), Message: message}
	}
	return c.Status(code).JSON(body)
}
