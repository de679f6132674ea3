package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/usecase/project"
)

func (s *Server) handleCreateProject(c echo.Context) error {
	var input project.CreateInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	created, err := s.projects.Create(c.Request().Context(), input)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListProjectsResponse is the response body for GET /api/projects.
type ListProjectsResponse struct {
	Projects []*model.Project `json:"projects"`
}

func (s *Server) handleListProjects(c echo.Context) error {
	projects, err := s.projects.List(c.Request().Context())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ListProjectsResponse{Projects: projects})
}

// handleDeleteProject deletes a project. The path parameter is a project id
// by default; ?by=store treats it as the RAG store name and skips the
// listing lookup.
func (s *Server) handleDeleteProject(c echo.Context) error {
	id := c.Param("id")

	var ref model.ProjectRef
	if c.QueryParam("by") == "store" {
		// Store names are resource paths ("fileSearchStores/..."); the
		// path parameter carries only the final segment.
		name := id
		if !strings.HasPrefix(name, "fileSearchStores/") {
			name = "fileSearchStores/" + name
		}
		ref = model.ByStoreName(name)
	} else {
		ref = model.ByProjectID(model.ProjectID(id))
	}

	if err := s.projects.Delete(c.Request().Context(), ref); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
