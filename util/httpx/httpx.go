// Package httpx shapes every response into the API's JSON envelope.
package httpx

import "github.com/labstack/echo/v4"

// OK writes the success envelope. data may be nil; the field is still
// rendered (DELETE responds with data:null).
func OK(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, echo.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// Fail writes the failure envelope. detail lands in the error field; pass
// nil for an empty object.
func Fail(c echo.Context, status int, message string, detail any) error {
	if detail == nil {
		detail = echo.Map{}
	}
	return c.JSON(status, echo.Map{
		"success": false,
		"message": message,
		"error":   detail,
	})
}
