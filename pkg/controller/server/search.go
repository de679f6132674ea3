package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
)

// AskRequest is the request body for POST /api/search/ask.
type AskRequest struct {
	ProjectID string `json:"projectId"`
	Question  string `json:"question"`
}

func (s *Server) handleAsk(c echo.Context) error {
	var req AskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.ProjectID == "" {
		return s.respondError(c, goerr.New("projectId is required", goerr.T(model.TagInvalidInput)))
	}

	ctx := c.Request().Context()
	storeName, err := s.projects.ResolveStore(ctx, req.ProjectID)
	if err != nil {
		return s.respondError(c, err)
	}

	answer, err := s.search.Ask(ctx, storeName, req.Question)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, answer)
}

// ExampleQuestionsResponse is the response body for GET /api/search/example-questions.
type ExampleQuestionsResponse struct {
	Questions []string `json:"questions"`
}

func (s *Server) handleExampleQuestions(c echo.Context) error {
	projectID := c.QueryParam("projectId")
	projectName := c.QueryParam("projectName")
	if projectID == "" {
		return s.respondError(c, goerr.New("projectId is required", goerr.T(model.TagInvalidInput)))
	}
	if projectName == "" {
		return s.respondError(c, goerr.New("projectName is required", goerr.T(model.TagInvalidInput)))
	}

	ctx := c.Request().Context()
	storeName, err := s.projects.ResolveStore(ctx, projectID)
	if err != nil {
		return s.respondError(c, err)
	}

	questions, err := s.search.ExampleQuestions(ctx, storeName, model.ProjectID(projectID), projectName)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ExampleQuestionsResponse{Questions: questions})
}
