package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProjectID identifies a project. Generated locally at creation time and
// durably encoded into the RAG store's display name.
type ProjectID string

// NewProjectID generates a new unique ProjectID.
func NewProjectID() ProjectID {
	return ProjectID(uuid.New().String())
}

// DefaultProjectColor is assigned when a project is created without an
// explicit color.
const DefaultProjectColor = "#4285F4"

// Project is a workspace of documents backed by exactly one RAG store.
// There is no local project table: the store listing is the project list,
// so only the fields recoverable from store metadata survive a restart.
type Project struct {
	ID           ProjectID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Color        string    `json:"color"`
	Goals        string    `json:"goals"`
	RagStoreName string    `json:"ragStoreName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// displayNameSep joins the project id and name inside the store display
// name. The id is a UUID, so the separator cannot appear in it and the
// first occurrence always splits correctly even if the name contains it.
const displayNameSep = "|"

// StoreDisplayName encodes the project identity into the display name used
// when creating its RAG store.
func StoreDisplayName(id ProjectID, name string) string {
	return string(id) + displayNameSep + name
}

// ParseStoreDisplayName recovers the project identity from a store display
// name. It reports false for stores not created by this service.
func ParseStoreDisplayName(displayName string) (ProjectID, string, bool) {
	id, name, ok := strings.Cut(displayName, displayNameSep)
	if !ok || id == "" {
		return "", "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", "", false
	}
	return ProjectID(id), name, true
}

// ProjectRef names a project either by its id or directly by its RAG store
// name. Deletion accepts both; the id form needs a listing pass to resolve.
type ProjectRef struct {
	id    ProjectID
	store string
}

// ByProjectID references a project by its generated id.
func ByProjectID(id ProjectID) ProjectRef {
	return ProjectRef{id: id}
}

// ByStoreName references a project directly by its RAG store name.
func ByStoreName(name string) ProjectRef {
	return ProjectRef{store: name}
}

// StoreName returns the store name and true when the reference is direct.
func (r ProjectRef) StoreName() (string, bool) {
	return r.store, r.store != ""
}

// ProjectID returns the project id and true when the reference is by id.
func (r ProjectRef) ProjectID() (ProjectID, bool) {
	return r.id, r.id != ""
}
