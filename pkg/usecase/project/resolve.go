package project

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
)

// storeNamePrefix identifies values that are already RAG store names.
const storeNamePrefix = "fileSearchStores/"

// ResolveStore returns the RAG store name for a project id. Values that are
// already store names pass through untouched, so callers may hand over
// either identity.
func (u *UseCase) ResolveStore(ctx context.Context, idOrStore string) (string, error) {
	if idOrStore == "" {
		return "", goerr.New("project id is required", goerr.T(model.TagInvalidInput))
	}
	if strings.HasPrefix(idOrStore, storeNamePrefix) {
		return idOrStore, nil
	}

	projects, err := u.List(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range projects {
		if string(p.ID) == idOrStore || p.RagStoreName == idOrStore {
			return p.RagStoreName, nil
		}
	}
	return "", goerr.New("project not found",
		goerr.T(model.TagNotFound), goerr.V("project", idOrStore))
}
