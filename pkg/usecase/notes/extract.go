package notes

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"text/template"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/adapter"
	"github.com/m-mizutani/minuta/pkg/model"
	"google.golang.org/genai"
)

//go:embed prompt/extract.md
var extractPromptRaw string

var extractPromptTmpl = template.Must(template.New("extract").Parse(extractPromptRaw))

// notesJSONSchema declares the extractor's output shape. It is converted to
// a genai response schema so the model returns parseable JSON.
var notesJSONSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"summary": {
			Type:        "string",
			Description: "Concise summary of the meeting",
		},
		"keyTopics": {
			Type:        "array",
			Description: "Main topics discussed",
			Items:       &jsonschema.Schema{Type: "string"},
		},
		"actionItems": {
			Type:        "array",
			Description: "Concrete follow-up actions",
			Items:       &jsonschema.Schema{Type: "string"},
		},
		"decisions": {
			Type:        "array",
			Description: "Decisions explicitly made",
			Items:       &jsonschema.Schema{Type: "string"},
		},
		"assumptions": {
			Type:        "array",
			Description: "Assumptions stated or implied",
			Items:       &jsonschema.Schema{Type: "string"},
		},
		"qa": {
			Type:        "array",
			Description: "Questions raised and the answers given",
			Items: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"question": {Type: "string"},
					"answer":   {Type: "string"},
				},
				Required: []string{"question", "answer"},
			},
		},
	},
	Required: []string{"summary", "keyTopics", "actionItems", "decisions", "assumptions", "qa"},
}

// extract invokes the notes extractor with the transcript text and target
// language, and parses the structured response.
func (u *UseCase) extract(ctx context.Context, transcript string, lang model.Language) (*model.Notes, error) {
	var buf bytes.Buffer
	if err := extractPromptTmpl.Execute(&buf, map[string]any{
		"Language":   u.languages.DisplayName(lang),
		"Transcript": transcript,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to execute extract prompt template")
	}

	schema, err := adapter.JSONSchemaToGenai(notesJSONSchema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build notes response schema")
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	contents := []*genai.Content{
		genai.NewContentFromText(buf.String(), genai.RoleUser),
	}

	resp, err := u.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		return nil, goerr.Wrap(err, "notes extraction failed", goerr.T(model.TagUpstream))
	}

	text, err := firstTextPart(resp)
	if err != nil {
		return nil, err
	}

	var notes model.Notes
	if err := json.Unmarshal([]byte(text), &notes); err != nil {
		return nil, goerr.Wrap(err, "failed to parse extracted notes",
			goerr.T(model.TagUpstream), goerr.V("response", text))
	}
	return &notes, nil
}

// firstTextPart extracts the first text part of a generation response.
func firstTextPart(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", goerr.New("invalid response structure from gemini", goerr.T(model.TagUpstream))
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text, nil
		}
	}
	return "", goerr.New("no text part in gemini response", goerr.T(model.TagUpstream))
}
