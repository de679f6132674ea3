package notes_test

import (
	"context"
	"errors"
	"sync/atomic"

	"google.golang.org/genai"
)

// mockGemini is a mock implementation of adapter.Gemini for testing
type mockGemini struct {
	generateFunc func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	calls        atomic.Int32
}

func (m *mockGemini) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.calls.Add(1)
	if m.generateFunc != nil {
		return m.generateFunc(ctx, contents, config)
	}
	return nil, errors.New("not implemented")
}

func (m *mockGemini) CreateFileSearchStore(ctx context.Context, displayName string) (*genai.FileSearchStore, error) {
	return nil, errors.New("not implemented")
}

func (m *mockGemini) ListFileSearchStores(ctx context.Context) ([]*genai.FileSearchStore, error) {
	return nil, errors.New("not implemented")
}

func (m *mockGemini) DeleteFileSearchStore(ctx context.Context, name string) error {
	return errors.New("not implemented")
}

// textResponse builds a generation response carrying a single text part.
func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: text}},
				},
			},
		},
	}
}
