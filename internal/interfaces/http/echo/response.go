package echo

import "github.com/labstack/echo/v4"

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func respond(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, apiResponse{Success: true, Data: data, Message: message})
}

func fail(c echo.Context, status int, message string, details any) error {
	return c.JSON(status, apiResponse{Success: false, Message: message, Errors: details})
}
