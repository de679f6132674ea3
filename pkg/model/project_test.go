package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/minuta/pkg/model"
)

func TestStoreDisplayNameRoundTrip(t *testing.T) {
	id := model.NewProjectID()
	dn := model.StoreDisplayName(id, "Q3 Planning")

	parsedID, name, ok := model.ParseStoreDisplayName(dn)
	gt.True(t, ok)
	gt.Equal(t, parsedID, id)
	gt.Equal(t, name, "Q3 Planning")
}

func TestStoreDisplayNameWithSeparatorInName(t *testing.T) {
	id := model.NewProjectID()
	dn := model.StoreDisplayName(id, "a|b|c")

	parsedID, name, ok := model.ParseStoreDisplayName(dn)
	gt.True(t, ok)
	gt.Equal(t, parsedID, id)
	gt.Equal(t, name, "a|b|c")
}

func TestParseStoreDisplayNameForeign(t *testing.T) {
	testCases := []struct {
		name        string
		displayName string
	}{
		{"empty", ""},
		{"no separator", "just-a-store"},
		{"not a uuid", "some-id|name"},
		{"empty id", "|name"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, ok := model.ParseStoreDisplayName(tc.displayName)
			gt.False(t, ok)
		})
	}
}

func TestProjectRef(t *testing.T) {
	byID := model.ByProjectID("abc")
	id, ok := byID.ProjectID()
	gt.True(t, ok)
	gt.Equal(t, id, model.ProjectID("abc"))
	_, ok = byID.StoreName()
	gt.False(t, ok)

	byStore := model.ByStoreName("fileSearchStores/xyz")
	store, ok := byStore.StoreName()
	gt.True(t, ok)
	gt.Equal(t, store, "fileSearchStores/xyz")
	_, ok = byStore.ProjectID()
	gt.False(t, ok)
}
