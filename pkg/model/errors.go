package model

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures so the controller layer can map them to
// HTTP statuses without inspecting message text.
var (
	// TagNotFound marks errors for missing meetings, artifacts and projects.
	TagNotFound = goerr.NewTag("not_found")

	// TagInvalidInput marks validation failures of caller-supplied values.
	TagInvalidInput = goerr.NewTag("invalid_input")

	// TagUpstream marks failures of external collaborators (Gemini, storage
	// backends). The wrapped message is surfaced to the caller.
	TagUpstream = goerr.NewTag("upstream")
)
