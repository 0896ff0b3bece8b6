package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSlotFor(t *testing.T) {
	cases := map[Datatype]string{
		TypeText:    SlotText,
		TypeFloat:   SlotFloat,
		TypeInt:     SlotInt,
		TypeDate:    SlotDate,
		TypeBoolean: SlotBool,
		TypeEnum:    SlotChoice,
		TypeFile:    SlotFile,
	}
	for dt, want := range cases {
		slot, err := SlotFor(dt)
		assert.NoError(t, err)
		assert.Equal(t, want, slot)
	}

	_, err := SlotFor(Datatype("richtext"))
	assert.ErrorIs(t, err, ErrUnknownDatatype)
}

func TestHiddenSlots(t *testing.T) {
	hidden, err := HiddenSlots(TypeFloat)
	assert.NoError(t, err)
	assert.Len(t, hidden, 6)
	assert.NotContains(t, hidden, SlotFloat)
	assert.Contains(t, hidden, SlotText)
	assert.Contains(t, hidden, SlotFile)

	_, err = HiddenSlots(Datatype("richtext"))
	assert.ErrorIs(t, err, ErrUnknownDatatype)
}

func TestSetValue(t *testing.T) {
	t.Run("TestText", func(t *testing.T) {
		element := &FormElement{Datatype: TypeText}
		var v ValueElement

		assert.NoError(t, v.SetValue(element, "hello"))
		assert.Equal(t, "hello", *v.ValueText)

		assert.ErrorIs(t, v.SetValue(element, 42), ErrInvalidValue)
	})

	t.Run("TestFloatCoercion", func(t *testing.T) {
		element := &FormElement{Datatype: TypeFloat}
		var v ValueElement

		assert.NoError(t, v.SetValue(element, "2.75"))
		assert.Equal(t, 2.75, *v.ValueFloat)

		assert.NoError(t, v.SetValue(element, 3))
		assert.Equal(t, 3.0, *v.ValueFloat)
	})

	t.Run("TestIntTruncatesFloat", func(t *testing.T) {
		element := &FormElement{Datatype: TypeInt}
		var v ValueElement

		assert.NoError(t, v.SetValue(element, 29.9))
		assert.Equal(t, int64(29), *v.ValueInt)

		assert.NoError(t, v.SetValue(element, "42"))
		assert.Equal(t, int64(42), *v.ValueInt)

		assert.ErrorIs(t, v.SetValue(element, "29.9"), ErrInvalidValue)
	})

	t.Run("TestDateLayouts", func(t *testing.T) {
		element := &FormElement{Datatype: TypeDate}
		var v ValueElement

		assert.NoError(t, v.SetValue(element, "2026-09-01"))
		assert.Equal(t, 2026, v.ValueDate.Year())

		assert.NoError(t, v.SetValue(element, "2026-09-01T10:30:00Z"))
		assert.Equal(t, 10, v.ValueDate.Hour())

		assert.ErrorIs(t, v.SetValue(element, "01/09/2026"), ErrInvalidValue)
	})

	t.Run("TestBool", func(t *testing.T) {
		element := &FormElement{Datatype: TypeBoolean}
		var v ValueElement

		assert.NoError(t, v.SetValue(element, true))
		assert.True(t, *v.ValueBool)

		assert.ErrorIs(t, v.SetValue(element, "true"), ErrInvalidValue)
	})

	t.Run("TestChoice", func(t *testing.T) {
		element := &FormElement{Datatype: TypeEnum}
		var v ValueElement

		id := primitive.NewObjectID()
		assert.NoError(t, v.SetValue(element, id.Hex()))
		assert.Equal(t, id, *v.ValueChoiceID)

		assert.ErrorIs(t, v.SetValue(element, "not-a-hex-id"), ErrInvalidValue)
	})

	t.Run("TestNilClearsOnlyLiveSlot", func(t *testing.T) {
		text := &FormElement{Datatype: TypeText}
		number := &FormElement{Datatype: TypeInt}
		var v ValueElement

		assert.NoError(t, v.SetValue(text, "keep me"))
		assert.NoError(t, v.SetValue(number, 7))
		assert.NoError(t, v.SetValue(number, nil))

		assert.Nil(t, v.ValueInt)
		assert.Equal(t, "keep me", *v.ValueText)
	})

	t.Run("TestUnknownDatatype", func(t *testing.T) {
		element := &FormElement{Datatype: Datatype("richtext")}
		var v ValueElement

		assert.ErrorIs(t, v.SetValue(element, "x"), ErrUnknownDatatype)
	})
}

func TestValueReadsLiveSlot(t *testing.T) {
	element := &FormElement{Datatype: TypeDate}
	var v ValueElement

	got, err := v.Value(element)
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, v.SetValue(element, "2026-09-01"))
	got, err = v.Value(element)
	assert.NoError(t, err)
	assert.Equal(t, 2026, got.(time.Time).Year())
}

func TestValueElementClean(t *testing.T) {
	choiceID := primitive.NewObjectID()
	group := &ChoiceGroup{ID: primitive.NewObjectID(), ChoiceIDs: []primitive.ObjectID{choiceID}}
	element := &FormElement{Datatype: TypeEnum, ChoiceGroupID: &group.ID}

	t.Run("TestMemberChoice", func(t *testing.T) {
		v := ValueElement{ValueChoiceID: &choiceID}
		assert.NoError(t, v.Clean(element, group))
	})

	t.Run("TestChoiceOutsideGroup", func(t *testing.T) {
		stranger := primitive.NewObjectID()
		v := ValueElement{ValueChoiceID: &stranger}
		assert.ErrorIs(t, v.Clean(element, group), ErrInvalidChoice)
	})

	t.Run("TestNoSelection", func(t *testing.T) {
		var v ValueElement
		assert.NoError(t, v.Clean(element, group))
	})

	t.Run("TestNonEnumIgnoresChoiceSlot", func(t *testing.T) {
		stranger := primitive.NewObjectID()
		v := ValueElement{ValueChoiceID: &stranger}
		assert.NoError(t, v.Clean(&FormElement{Datatype: TypeText}, nil))
	})
}
