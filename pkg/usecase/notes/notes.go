package notes

import (
	"github.com/m-mizutani/minuta/pkg/adapter"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/repository"
)

// UseCase provides the notes lifecycle: generation, language-specific
// regeneration, retrieval and the metadata index.
type UseCase struct {
	repo      repository.Repository
	gemini    adapter.Gemini
	languages model.LanguageTable
	locks     keyedMutex
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithLanguages overrides the supported-language table.
func WithLanguages(table model.LanguageTable) Option {
	return func(uc *UseCase) {
		uc.languages = table
	}
}

// New creates a new notes UseCase instance
func New(repo repository.Repository, gemini adapter.Gemini, opts ...Option) *UseCase {
	uc := &UseCase{
		repo:      repo,
		gemini:    gemini,
		languages: model.DefaultLanguages(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Languages returns the supported-language table in use.
func (u *UseCase) Languages() model.LanguageTable {
	return u.languages
}
