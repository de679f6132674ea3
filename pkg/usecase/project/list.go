package project

import (
	"context"

	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/utils/logging"
)

// List reconstructs the project list from the RAG store listing. Stores
// whose display name does not carry a project identity (created outside
// this service) are skipped.
func (u *UseCase) List(ctx context.Context) ([]*model.Project, error) {
	stores, err := u.gemini.ListFileSearchStores(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]*model.Project, 0, len(stores))
	for _, store := range stores {
		id, name, ok := model.ParseStoreDisplayName(store.DisplayName)
		if !ok {
			logging.From(ctx).Debug("skipping foreign store", "store", store.Name)
			continue
		}
		projects = append(projects, &model.Project{
			ID:           id,
			Name:         name,
			Color:        model.DefaultProjectColor,
			RagStoreName: store.Name,
			CreatedAt:    store.CreateTime,
		})
	}
	return projects, nil
}
