package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks struct validation tags and converts the first
// violation into a 400 fiber error the middleware can render.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if ve, ok := err.(validator.ValidationErrors); ok {
			errs = ve
		}
		if len(errs) > 0 {
			fields := make([]string, 0, len(errs))
			for _, fe := range errs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fiber.NewError(fiber.StatusBadRequest, "invalid request: "+strings.Join(fields, ", "))
		}
		return fiber.NewError(fiber.StatusBadRequest, "invalid request")
	}
	return nil
}
