package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstPublicGroup(t *testing.T) {
	t.Run("TestSkipsHiddenGroups", func(t *testing.T) {
		groups := []FormGroup{
			{Name: "Draft section", DisplayOrder: 1, IsPublic: false},
			{Name: "Section A", DisplayOrder: 2, IsPublic: true},
			{Name: "Section B", DisplayOrder: 3, IsPublic: true},
		}

		// only the first public group is served, later ones are skipped
		got := FirstPublicGroup(groups)
		assert.NotNil(t, got)
		assert.Equal(t, "Section A", got.Name)
	})

	t.Run("TestNoPublicGroup", func(t *testing.T) {
		groups := []FormGroup{
			{Name: "Draft section", IsPublic: false},
		}
		assert.Nil(t, FirstPublicGroup(groups))
		assert.Nil(t, FirstPublicGroup(nil))
	})
}
