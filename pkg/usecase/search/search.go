package search

import (
	"github.com/m-mizutani/minuta/pkg/adapter"
)

// UseCase answers questions against a project's RAG store and generates
// example questions for it.
type UseCase struct {
	gemini adapter.Gemini
}

// New creates a new search UseCase instance
func New(gemini adapter.Gemini) *UseCase {
	return &UseCase{gemini: gemini}
}
