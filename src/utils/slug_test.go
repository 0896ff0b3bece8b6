package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSlugify(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("64d2f8a9b3e4c1d2e3f4a5b6")
	assert.NoError(t, err)

	t.Run("TestNamePlusID", func(t *testing.T) {
		got := Slugify("Visitor Survey", id)
		assert.Equal(t, "visitor-survey_64d2f8a9b3e4c1d2e3f4a5b6", got)
	})

	t.Run("TestNormalizesName", func(t *testing.T) {
		got := Slugify("  Section 1:  Basics  ", id)
		assert.Equal(t, "section-1-basics_64d2f8a9b3e4c1d2e3f4a5b6", got)
	})

	t.Run("TestStableForSameInput", func(t *testing.T) {
		assert.Equal(t, Slugify("Section 1", id), Slugify("Section 1", id))
	})

	t.Run("TestDifferentIDsDisambiguate", func(t *testing.T) {
		other := primitive.NewObjectID()
		assert.NotEqual(t, Slugify("Section 1", id), Slugify("Section 1", other))
	})
}
