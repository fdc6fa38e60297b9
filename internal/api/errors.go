package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopmatic/internal/entity"
)

// ErrorHandler is the single responder for every error a handler returns:
// request-level failures keep their carried status, everything else becomes
// a 500 with its raw message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := err.Error()

	var reqErr *entity.Error
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &reqErr):
		status = reqErr.Status
		message = reqErr.Message
	case errors.As(err, &echoErr):
		status = echoErr.Code
		message = fmt.Sprintf("%v", echoErr.Message)
	}

	_ = c.JSON(status, echo.Map{"success": false, "message": message})
}
