package search_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/usecase/search"
	"google.golang.org/genai"
)

type mockGemini struct {
	generateFunc func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	calls        int
}

func (m *mockGemini) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.calls++
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

func groundedResponse(text string, chunks ...*genai.GroundingChunkRetrievedContext) *genai.GenerateContentResponse {
	var gc []*genai.GroundingChunk
	for _, rc := range chunks {
		gc = append(gc, &genai.GroundingChunk{RetrievedContext: rc})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: text}},
				},
				GroundingMetadata: &genai.GroundingMetadata{
					GroundingChunks: gc,
				},
			},
		},
	}
}

func TestAsk(t *testing.T) {
	ctx := context.Background()

	var gotConfig *genai.GenerateContentConfig
	var gotPrompt string
	mock := &mockGemini{
		generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			gotConfig = config
			gotPrompt = contents[0].Parts[0].Text
			return groundedResponse("The deadline is Friday.",
				&genai.GroundingChunkRetrievedContext{
					Text:  "deadline: Friday",
					Title: "meeting notes",
					URI:   "documents/notes.txt",
				},
			), nil
		},
	}

	answer := gt.R1(search.New(mock).Ask(ctx, "fileSearchStores/s1", "When is the deadline?")).NoError(t)
	gt.Equal(t, answer.Text, "The deadline is Friday.")
	gt.Equal(t, len(answer.Chunks), 1)
	gt.Equal(t, answer.Chunks[0].DocumentName, "documents/notes.txt")
	gt.Equal(t, answer.Chunks[0].Title, "meeting notes")

	gt.S(t, gotPrompt).Contains("When is the deadline?")
	gt.V(t, gotConfig).NotNil()
	gt.Equal(t, gotConfig.Tools[0].FileSearch.FileSearchStoreNames, []string{"fileSearchStores/s1"})
}

func TestAskFiltersChunks(t *testing.T) {
	ctx := context.Background()
	mock := &mockGemini{
		generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return groundedResponse("answer",
				&genai.GroundingChunkRetrievedContext{Text: "keep me", URI: "doc-a"},
				&genai.GroundingChunkRetrievedContext{Text: "   ", URI: "doc-b"},
				&genai.GroundingChunkRetrievedContext{Text: "meta", URI: model.ReservedMetadataDocument},
				&genai.GroundingChunkRetrievedContext{Text: "meta", URI: "stores/s1/" + model.ReservedMetadataDocument},
				&genai.GroundingChunkRetrievedContext{Text: "meta", Title: model.ReservedMetadataDocument},
			), nil
		},
	}

	answer := gt.R1(search.New(mock).Ask(ctx, "fileSearchStores/s1", "q")).NoError(t)
	gt.Equal(t, len(answer.Chunks), 1)
	gt.Equal(t, answer.Chunks[0].DocumentName, "doc-a")
}

func TestAskNoAnswerFallback(t *testing.T) {
	ctx := context.Background()
	mock := &mockGemini{
		generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{}, nil
		},
	}

	answer := gt.R1(search.New(mock).Ask(ctx, "fileSearchStores/s1", "q")).NoError(t)
	gt.Equal(t, answer.Text, model.NoAnswerFallback)
	gt.Equal(t, len(answer.Chunks), 0)
}

func TestAskValidation(t *testing.T) {
	ctx := context.Background()
	mock := &mockGemini{}
	uc := search.New(mock)

	_, err := uc.Ask(ctx, "", "q")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.TagInvalidInput))

	_, err = uc.Ask(ctx, "fileSearchStores/s1", "   ")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.TagInvalidInput))

	gt.Equal(t, mock.calls, 0)
}

func TestAskUpstreamError(t *testing.T) {
	ctx := context.Background()
	mock := &mockGemini{
		generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return nil, errors.New("rate limited")
		},
	}

	_, err := search.New(mock).Ask(ctx, "fileSearchStores/s1", "q")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.TagUpstream))
}

func TestExampleQuestions(t *testing.T) {
	ctx := context.Background()

	var gotConfig *genai.GenerateContentConfig
	var gotPrompt string
	mock := &mockGemini{
		generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			gotConfig = config
			gotPrompt = contents[0].Parts[0].Text
			return groundedResponse(`["What was decided?","Who owns the rollout?"]`), nil
		},
	}

	questions := gt.R1(search.New(mock).ExampleQuestions(ctx, "fileSearchStores/s1", model.NewProjectID(), "Research")).NoError(t)
	gt.Equal(t, questions, []string{"What was decided?", "Who owns the rollout?"})

	gt.S(t, gotPrompt).Contains("Research")
	gt.Equal(t, gotConfig.ResponseMIMEType, "application/json")
	gt.V(t, gotConfig.ResponseSchema).NotNil()
	gt.Equal(t, gotConfig.Tools[0].FileSearch.FileSearchStoreNames, []string{"fileSearchStores/s1"})
}

func TestExampleQuestionsValidation(t *testing.T) {
	ctx := context.Background()
	mock := &mockGemini{}
	uc := search.New(mock)

	cases := []struct {
		name      string
		store     string
		projectID model.ProjectID
		project   string
	}{
		{name: "missing project id", store: "fileSearchStores/s1", project: "p"},
		{name: "missing project name", store: "fileSearchStores/s1", projectID: model.NewProjectID()},
		{name: "missing store", projectID: model.NewProjectID(), project: "p"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.ExampleQuestions(ctx, tc.store, tc.projectID, tc.project)
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, model.TagInvalidInput))
		})
	}
	gt.Equal(t, mock.calls, 0)
}

func TestExampleQuestionsMalformedResponse(t *testing.T) {
	ctx := context.Background()
	mock := &mockGemini{
		generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return groundedResponse("not json at all"), nil
		},
	}

	_, err := search.New(mock).ExampleQuestions(ctx, "fileSearchStores/s1", model.NewProjectID(), "p")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.TagUpstream))
	gt.True(t, strings.Contains(err.Error(), "parse"))
}
