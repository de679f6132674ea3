package adapter

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
	"google.golang.org/genai"
)

// Gemini wraps the genai calls this service depends on: content generation
// for notes extraction and RAG answering, plus file search store management.
type Gemini interface {
	GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	CreateFileSearchStore(ctx context.Context, displayName string) (*genai.FileSearchStore, error)
	ListFileSearchStores(ctx context.Context) ([]*genai.FileSearchStore, error)
	DeleteFileSearchStore(ctx context.Context, name string) error
}

type GeminiClient struct {
	client          *genai.Client
	generativeModel string
}

type GeminiOption func(*GeminiClient)

func WithGenerativeModel(model string) GeminiOption {
	return func(g *GeminiClient) {
		g.generativeModel = model
	}
}

func NewGemini(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create genai client", goerr.T(model.TagUpstream))
	}

	g := &GeminiClient{
		client:          client,
		generativeModel: "gemini-2.5-flash",
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.generativeModel, contents, config)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate content", goerr.T(model.TagUpstream))
	}
	return resp, nil
}

func (g *GeminiClient) CreateFileSearchStore(ctx context.Context, displayName string) (*genai.FileSearchStore, error) {
	store, err := g.client.FileSearchStores.Create(ctx, &genai.CreateFileSearchStoreConfig{
		DisplayName: displayName,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create file search store",
			goerr.T(model.TagUpstream),
			goerr.V("displayName", displayName))
	}
	return store, nil
}

func (g *GeminiClient) ListFileSearchStores(ctx context.Context) ([]*genai.FileSearchStore, error) {
	var stores []*genai.FileSearchStore
	for store, err := range g.client.FileSearchStores.All(ctx) {
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list file search stores", goerr.T(model.TagUpstream))
		}
		stores = append(stores, store)
	}
	return stores, nil
}

func (g *GeminiClient) DeleteFileSearchStore(ctx context.Context, name string) error {
	if err := g.client.FileSearchStores.Delete(ctx, name, &genai.DeleteFileSearchStoreConfig{
		Force: genai.Ptr(true),
	}); err != nil {
		return goerr.Wrap(err, "failed to delete file search store",
			goerr.T(model.TagUpstream),
			goerr.V("name", name))
	}
	return nil
}
