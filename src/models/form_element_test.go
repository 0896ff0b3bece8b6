package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFormElementClean(t *testing.T) {
	groupID := primitive.NewObjectID()

	t.Run("TestEnumRequiresChoiceGroup", func(t *testing.T) {
		element := FormElement{Name: "Color", Datatype: TypeEnum}
		assert.ErrorIs(t, element.Clean(), ErrSchemaInvalid)

		element.ChoiceGroupID = &groupID
		assert.NoError(t, element.Clean())
	})

	t.Run("TestChoiceGroupOnlyOnEnum", func(t *testing.T) {
		element := FormElement{Name: "Age", Datatype: TypeInt, ChoiceGroupID: &groupID}
		assert.ErrorIs(t, element.Clean(), ErrSchemaInvalid)

		element.ChoiceGroupID = nil
		assert.NoError(t, element.Clean())
	})

	t.Run("TestPlainElements", func(t *testing.T) {
		for _, dt := range []Datatype{TypeText, TypeFloat, TypeInt, TypeDate, TypeBoolean, TypeFile} {
			element := FormElement{Name: "Field", Datatype: dt}
			assert.NoError(t, element.Clean(), "datatype %q without a choice group should be valid", dt)
		}
	})
}

func TestPublicElements(t *testing.T) {
	elements := []FormElement{
		{Name: "visible 1", IsPublic: true},
		{Name: "hidden", IsPublic: false},
		{Name: "visible 2", IsPublic: true},
	}

	visible := PublicElements(elements)
	assert.Len(t, visible, 2)
	assert.Equal(t, "visible 1", visible[0].Name)
	assert.Equal(t, "visible 2", visible[1].Name)

	assert.Empty(t, PublicElements(nil))
}
