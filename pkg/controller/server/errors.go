package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/utils/logging"
)

// ErrorResponse is the JSON error envelope of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, model.TagInvalidInput):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.TagNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a usecase error to an HTTP response. Upstream failures
// surface their wrapped message; other internal failures are logged
// server-side and answered with a generic message.
func (s *Server) respondError(c echo.Context, err error) error {
	status := statusOf(err)
	msg := err.Error()

	if status == http.StatusInternalServerError {
		logging.From(c.Request().Context()).Error("request failed", "error", err)
		if !goerr.HasTag(err, model.TagUpstream) {
			msg = "internal error"
		}
	}

	return c.JSON(status, ErrorResponse{Error: msg})
}
