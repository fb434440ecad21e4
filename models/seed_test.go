package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	require.Len(t, cats, 8)

	// sort_order toplam sıralamayı verir, seed verisinde zaten artan olmalı
	assert.True(t, sort.SliceIsSorted(cats, func(i, j int) bool {
		return cats[i].SortOrder < cats[j].SortOrder
	}))

	seen := make(map[uint]bool)
	for _, c := range cats {
		assert.False(t, seen[c.ID], "tekrarlanan kategori id: %d", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Color)
	}
}

func TestDefaultServices(t *testing.T) {
	catIDs := make(map[uint]bool)
	for _, c := range DefaultCategories() {
		catIDs[c.ID] = true
	}

	svcs := DefaultServices()
	require.Len(t, svcs, 11)

	seen := make(map[uint]bool)
	for _, s := range svcs {
		assert.False(t, seen[s.ID], "tekrarlanan hizmet id: %d", s.ID)
		seen[s.ID] = true
		// her hizmet var olan bir kategoriye bağlı olmalı
		assert.True(t, catIDs[s.CategoryID], "hizmet %q bilinmeyen kategoriye bağlı: %d", s.Name, s.CategoryID)
		assert.GreaterOrEqual(t, s.Price, 0)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("bilinmeyen"))
}
