package search

import (
	"bytes"
	"context"
	_ "embed"
	"path"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
	"google.golang.org/genai"
)

//go:embed prompt/ask.md
var askPromptRaw string

var askPromptTmpl = template.Must(template.New("ask").Parse(askPromptRaw))

// Ask answers a question against a RAG store. Grounding chunks with no
// retrieved text and chunks citing the store's bookkeeping document are
// dropped from the result.
func (u *UseCase) Ask(ctx context.Context, storeName, question string) (*model.Answer, error) {
	if storeName == "" {
		return nil, goerr.New("store name is required", goerr.T(model.TagInvalidInput))
	}
	if strings.TrimSpace(question) == "" {
		return nil, goerr.New("question is required", goerr.T(model.TagInvalidInput))
	}

	var buf bytes.Buffer
	if err := askPromptTmpl.Execute(&buf, map[string]any{
		"Question": question,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to execute ask prompt template")
	}

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{
				FileSearch: &genai.FileSearch{
					FileSearchStoreNames: []string{storeName},
				},
			},
		},
	}
	contents := []*genai.Content{
		genai.NewContentFromText(buf.String(), genai.RoleUser),
	}

	resp, err := u.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		return nil, goerr.Wrap(err, "RAG query failed",
			goerr.T(model.TagUpstream), goerr.V("store", storeName))
	}

	answer := &model.Answer{
		Text:   answerText(resp),
		Chunks: filterChunks(groundingChunks(resp)),
	}
	if answer.Text == "" {
		answer.Text = model.NoAnswerFallback
	}
	return answer, nil
}

// answerText joins the text parts of the first candidate.
func answerText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			parts = append(parts, part.Text)
		}
	}
	return strings.Join(parts, "")
}

// groundingChunks maps the genai grounding metadata into domain chunks.
func groundingChunks(resp *genai.GenerateContentResponse) []model.GroundingChunk {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var chunks []model.GroundingChunk
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		rc := chunk.RetrievedContext
		if rc == nil {
			continue
		}
		chunks = append(chunks, model.GroundingChunk{
			Text:         rc.Text,
			DocumentName: rc.URI,
			Title:        rc.Title,
		})
	}
	return chunks
}

// filterChunks drops chunks that must not surface as citations: empty
// retrieved text, and anything citing the reserved bookkeeping document.
func filterChunks(chunks []model.GroundingChunk) []model.GroundingChunk {
	filtered := make([]model.GroundingChunk, 0, len(chunks))
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk.Text) == "" {
			continue
		}
		if isReservedDocument(chunk.DocumentName) || isReservedDocument(chunk.Title) {
			continue
		}
		filtered = append(filtered, chunk)
	}
	return filtered
}

func isReservedDocument(name string) bool {
	return name == model.ReservedMetadataDocument ||
		path.Base(name) == model.ReservedMetadataDocument
}
