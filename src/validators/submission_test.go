package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-Uppass-Flows/src/models"
)

func buildEnumFixture() (models.FormElement, *models.ChoiceGroup, []models.Choice) {
	choices := []models.Choice{
		{ID: primitive.NewObjectID(), Value: "Red"},
		{ID: primitive.NewObjectID(), Value: "Blue"},
	}
	group := &models.ChoiceGroup{
		ID:        primitive.NewObjectID(),
		Name:      "Colors",
		ChoiceIDs: []primitive.ObjectID{choices[0].ID, choices[1].ID},
	}
	element := models.FormElement{
		ID:            primitive.NewObjectID(),
		Name:          "Favorite color",
		Datatype:      models.TypeEnum,
		ChoiceGroupID: &group.ID,
		IsPublic:      true,
	}
	return element, group, choices
}

func TestValidateSubmission(t *testing.T) {
	guestID := primitive.NewObjectID()

	t.Run("TestValidValues", func(t *testing.T) {
		name := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.TypeText, Required: true}
		age := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.TypeInt, Required: true}
		elements := []models.FormElement{name, age}

		inputs := []ValueInput{
			{ElementID: name.ID.Hex(), Value: "Somchai"},
			{ElementID: age.ID.Hex(), Value: 29},
		}

		values, fieldErrs, err := ValidateSubmission(elements, nil, inputs, &guestID)
		assert.NoError(t, err)
		assert.Empty(t, fieldErrs)
		assert.Len(t, values, 2)

		assert.Equal(t, name.ID, values[0].FormElementID)
		assert.Equal(t, "Somchai", *values[0].ValueText)
		assert.Equal(t, int64(29), *values[1].ValueInt)
		assert.Equal(t, guestID, *values[0].GuestID)
	})

	t.Run("TestInvalidValueCollectsFieldError", func(t *testing.T) {
		age := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.TypeInt, Required: true}

		inputs := []ValueInput{{ElementID: age.ID.Hex(), Value: "abc"}}

		values, fieldErrs, err := ValidateSubmission([]models.FormElement{age}, nil, inputs, &guestID)
		assert.NoError(t, err)
		assert.Nil(t, values)
		assert.Len(t, fieldErrs, 1)
		assert.Equal(t, age.ID.Hex(), fieldErrs[0].ElementID)
		assert.Equal(t, models.SlotInt, fieldErrs[0].Slot)
	})

	t.Run("TestAllProblemsReportedTogether", func(t *testing.T) {
		age := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.TypeInt, Required: true}
		visited := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.TypeBoolean, Required: true}

		inputs := []ValueInput{
			{ElementID: age.ID.Hex(), Value: "abc"},
			{ElementID: visited.ID.Hex(), Value: "yes"},
		}

		_, fieldErrs, err := ValidateSubmission([]models.FormElement{age, visited}, nil, inputs, &guestID)
		assert.NoError(t, err)
		assert.Len(t, fieldErrs, 2)
	})

	t.Run("TestRequiredMissing", func(t *testing.T) {
		name := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.TypeText, Required: true}

		_, fieldErrs, err := ValidateSubmission([]models.FormElement{name}, nil, nil, &guestID)
		assert.NoError(t, err)
		assert.Len(t, fieldErrs, 1)
		assert.Equal(t, "this field is required", fieldErrs[0].Message)
	})

	t.Run("TestOptionalMissingIsSkipped", func(t *testing.T) {
		note := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.TypeText, Required: false}

		values, fieldErrs, err := ValidateSubmission([]models.FormElement{note}, nil, nil, &guestID)
		assert.NoError(t, err)
		assert.Empty(t, fieldErrs)
		assert.Empty(t, values)
	})

	t.Run("TestEmptyStringCountsAsMissing", func(t *testing.T) {
		name := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.TypeText, Required: true}

		inputs := []ValueInput{{ElementID: name.ID.Hex(), Value: ""}}

		_, fieldErrs, err := ValidateSubmission([]models.FormElement{name}, nil, inputs, &guestID)
		assert.NoError(t, err)
		assert.Len(t, fieldErrs, 1)
	})

	t.Run("TestEnumMemberChoice", func(t *testing.T) {
		element, group, choices := buildEnumFixture()
		groups := map[primitive.ObjectID]*models.ChoiceGroup{group.ID: group}

		inputs := []ValueInput{{ElementID: element.ID.Hex(), Value: choices[0].ID.Hex()}}

		values, fieldErrs, err := ValidateSubmission([]models.FormElement{element}, groups, inputs, &guestID)
		assert.NoError(t, err)
		assert.Empty(t, fieldErrs)
		assert.Len(t, values, 1)
		assert.Equal(t, choices[0].ID, *values[0].ValueChoiceID)
	})

	t.Run("TestEnumChoiceOutsideGroup", func(t *testing.T) {
		element, group, _ := buildEnumFixture()
		groups := map[primitive.ObjectID]*models.ChoiceGroup{group.ID: group}

		stranger := primitive.NewObjectID()
		inputs := []ValueInput{{ElementID: element.ID.Hex(), Value: stranger.Hex()}}

		values, fieldErrs, err := ValidateSubmission([]models.FormElement{element}, groups, inputs, &guestID)
		assert.NoError(t, err)
		assert.Nil(t, values)
		assert.Len(t, fieldErrs, 1)
		assert.Equal(t, models.SlotChoice, fieldErrs[0].Slot)
	})

	t.Run("TestFileReference", func(t *testing.T) {
		upload := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.TypeFile}

		inputs := []ValueInput{{ElementID: upload.ID.Hex(), Value: "uploads/2026/09/01/report.pdf"}}

		values, fieldErrs, err := ValidateSubmission([]models.FormElement{upload}, nil, inputs, &guestID)
		assert.NoError(t, err)
		assert.Empty(t, fieldErrs)
		assert.Len(t, values, 1)
		assert.Equal(t, "uploads/2026/09/01/report.pdf", *values[0].ValueFile)
	})

	t.Run("TestUnknownDatatypeIsConfigurationError", func(t *testing.T) {
		broken := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.Datatype("richtext")}

		values, fieldErrs, err := ValidateSubmission([]models.FormElement{broken}, nil, nil, &guestID)
		assert.ErrorIs(t, err, models.ErrUnknownDatatype)
		assert.Nil(t, values)
		assert.Nil(t, fieldErrs)
	})
}

func TestBuildEntries(t *testing.T) {
	t.Run("TestTextEntrySlots", func(t *testing.T) {
		name := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.TypeText}

		entries, err := BuildEntries([]models.FormElement{name}, nil, nil)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, models.SlotText, entries[0].LiveSlot)
		assert.Len(t, entries[0].HiddenSlots, 6)
		assert.NotContains(t, entries[0].HiddenSlots, models.SlotText)
		assert.Empty(t, entries[0].Choices)
	})

	t.Run("TestEnumEntryChoices", func(t *testing.T) {
		element, group, choices := buildEnumFixture()
		groups := map[primitive.ObjectID]*models.ChoiceGroup{group.ID: group}
		choicesByID := map[primitive.ObjectID]models.Choice{
			choices[0].ID: choices[0],
			choices[1].ID: choices[1],
		}

		entries, err := BuildEntries([]models.FormElement{element}, groups, choicesByID)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)

		// the no-selection sentinel always comes first
		assert.Len(t, entries[0].Choices, 3)
		assert.Equal(t, models.NoSelection, entries[0].Choices[0])
		assert.Equal(t, "Red", entries[0].Choices[1].Value)
		assert.Equal(t, "Blue", entries[0].Choices[2].Value)
	})

	t.Run("TestUnknownDatatypeFails", func(t *testing.T) {
		broken := models.FormElement{ID: primitive.NewObjectID(), Datatype: models.Datatype("richtext")}

		entries, err := BuildEntries([]models.FormElement{broken}, nil, nil)
		assert.ErrorIs(t, err, models.ErrUnknownDatatype)
		assert.Nil(t, entries)
	})
}
