package search

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

//go:embed prompt/questions.md
var questionsPromptRaw string

var questionsPromptTmpl = template.Must(template.New("questions").Parse(questionsPromptRaw))

var questionsJSONSchema = &jsonschema.Schema{
	Type:        "array",
	Description: "Example questions a user could ask about the project",
	Items:       &jsonschema.Schema{Type: "string"},
}

// ExampleQuestions generates example questions a user could ask about a
// project, grounded in the project's RAG store.
func (u *UseCase) ExampleQuestions(ctx context.Context, storeName string, projectID model.ProjectID, projectName string) ([]string, error) {
	if projectID == "" {
		return nil, goerr.New("project id is required", goerr.T(model.TagInvalidInput))
	}
	if projectName == "" {
		return nil, goerr.New("project name is required", goerr.T(model.TagInvalidInput))
	}
	if storeName == "" {
		return nil, goerr.New("store name is required", goerr.T(model.TagInvalidInput))
	}

	var buf bytes.Buffer
	if err := questionsPromptTmpl.Execute(&buf, map[string]any{
		"ProjectName": projectName,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to execute questions prompt template")
	}

	schema, err := adapter.JSONSchemaToGenai(questionsJSONSchema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build questions response schema")
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
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
		return nil, goerr.Wrap(err, "example question generation failed",
			goerr.T(model.TagUpstream), goerr.V("store", storeName))
	}

	text := answerText(resp)
	if text == "" {
		return nil, goerr.New("empty response from gemini", goerr.T(model.TagUpstream))
	}

	var questions []string
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		return nil, goerr.Wrap(err, "failed to parse example questions",
			goerr.T(model.TagUpstream), goerr.V("response", text))
	}
	return questions, nil
}
