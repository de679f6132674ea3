package project

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/utils/logging"
)

// CreateInput carries the caller-supplied project fields.
type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Goals       string `json:"goals"`
}

// Create provisions a project and its RAG store. The store is the durable
// record; the returned Project is not persisted anywhere else. A failed
// store creation leaves no local state behind.
func (u *UseCase) Create(ctx context.Context, input CreateInput) (*model.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, goerr.New("project name is required", goerr.T(model.TagInvalidInput))
	}

	color := input.Color
	if color == "" {
		color = model.DefaultProjectColor
	}

	id := model.NewProjectID()
	store, err := u.gemini.CreateFileSearchStore(ctx, model.StoreDisplayName(id, name))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create RAG store", goerr.V("project", id))
	}

	createdAt := store.CreateTime
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	logging.From(ctx).Info("created project",
		"project", id, "name", name, "store", store.Name)

	return &model.Project{
		ID:           id,
		Name:         name,
		Description:  input.Description,
		Color:        color,
		Goals:        input.Goals,
		RagStoreName: store.Name,
		CreatedAt:    createdAt,
	}, nil
}
