package project

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/utils/logging"
)

// Delete removes a project by deleting its RAG store. A reference by store
// name deletes directly; a reference by project id is resolved through the
// store listing first and fails NotFound when no listed project matches.
func (u *UseCase) Delete(ctx context.Context, ref model.ProjectRef) error {
	storeName, ok := ref.StoreName()
	if !ok {
		id, hasID := ref.ProjectID()
		if !hasID {
			return goerr.New("project reference is empty", goerr.T(model.TagInvalidInput))
		}

		projects, err := u.List(ctx)
		if err != nil {
			return err
		}
		for _, p := range projects {
			if p.ID == id {
				storeName = p.RagStoreName
				break
			}
		}
		if storeName == "" {
			return goerr.New("project not found",
				goerr.T(model.TagNotFound), goerr.V("project", id))
		}
	}

	if err := u.gemini.DeleteFileSearchStore(ctx, storeName); err != nil {
		return err
	}

	logging.From(ctx).Info("deleted project", "store", storeName)
	return nil
}
