package server

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/m-mizutani/minuta/pkg/model"
)

// meetingIDParam extracts the meeting id path parameter. IDs may arrive
// URL-encoded; an id that fails to decode is used as-is.
func meetingIDParam(c echo.Context) model.MeetingID {
	raw := c.Param("id")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return model.MeetingID(decoded)
	}
	return model.MeetingID(raw)
}

func (s *Server) handleGenerateNotes(c echo.Context) error {
	result, err := s.notes.Generate(c.Request().Context(), meetingIDParam(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetDefaultNotes(c echo.Context) error {
	result, err := s.notes.Get(c.Request().Context(), meetingIDParam(c), model.DefaultLanguage)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleNotesMetadata(c echo.Context) error {
	meta, err := s.notes.Metadata(c.Request().Context(), meetingIDParam(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, meta)
}

// RegenerateRequest is the request body for POST /api/meetings/:id/regenerate-notes.
type RegenerateRequest struct {
	Language string `json:"language"`
}

// RegenerateResponse is the response body for POST /api/meetings/:id/regenerate-notes.
type RegenerateResponse struct {
	Language model.Language `json:"language"`
	Notes    *model.Notes   `json:"notes"`
}

func (s *Server) handleRegenerateNotes(c echo.Context) error {
	var req RegenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	lang := model.Language(req.Language)
	result, err := s.notes.Regenerate(c.Request().Context(), meetingIDParam(c), lang)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, RegenerateResponse{Language: lang, Notes: result})
}

func (s *Server) handleGetNotes(c echo.Context) error {
	lang := model.Language(c.QueryParam("language"))
	if lang == "" {
		lang = model.DefaultLanguage
	}

	result, err := s.notes.Get(c.Request().Context(), meetingIDParam(c), lang)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
