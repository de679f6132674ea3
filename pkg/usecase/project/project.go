package project

import (
	"github.com/m-mizutani/minuta/pkg/adapter"
)

// UseCase maps projects onto RAG stores. The external store listing is the
// only durable record of projects: there is no local project table.
type UseCase struct {
	gemini adapter.Gemini
}

// New creates a new project UseCase instance
func New(gemini adapter.Gemini) *UseCase {
	return &UseCase{gemini: gemini}
}
