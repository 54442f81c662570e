package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kpauljoseph/ankihelper/internal/apperr"
	"github.com/kpauljoseph/ankihelper/pkg/models"
)

// errorHandler is the only place errors become status codes.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := apperr.StatusCode(err)
	message := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		s.logger.Error("%s %s: %s error: %v", c.Request().Method, c.Request().URL.Path, apperr.KindOf(err), err)
	} else {
		s.logger.Debug("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, models.ErrorResponse{Error: message})
	}
	if writeErr != nil {
		s.logger.Error("failed to write error response: %v", writeErr)
	}
}
