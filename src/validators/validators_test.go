package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-Uppass-Flows/src/models"
)

func TestRegistry(t *testing.T) {
	// Every renderable datatype except file resolves to exactly one validator
	t.Run("TestRegisteredDatatypes", func(t *testing.T) {
		for _, dt := range []models.Datatype{
			models.TypeText, models.TypeFloat, models.TypeInt,
			models.TypeDate, models.TypeBoolean, models.TypeEnum, TypeObject,
		} {
			fns, err := Get(dt)
			assert.NoError(t, err, "datatype %q should be registered", dt)
			assert.Len(t, fns, 1)
		}
	})

	// file values are checked as references at write time, not via the registry
	t.Run("TestFileIsNotRegistered", func(t *testing.T) {
		fns, err := Get(models.TypeFile)
		assert.Nil(t, fns)
		assert.ErrorIs(t, err, models.ErrUnknownDatatype)
	})

	t.Run("TestUnknownDatatype", func(t *testing.T) {
		fns, err := Get(models.Datatype("richtext"))
		assert.Nil(t, fns)
		assert.ErrorIs(t, err, models.ErrUnknownDatatype)
	})
}

func TestValidateText(t *testing.T) {
	assert.NoError(t, ValidateText("hello"))
	assert.NoError(t, ValidateText(""))
	assert.ErrorIs(t, ValidateText(42), models.ErrInvalidValue)
	assert.ErrorIs(t, ValidateText(true), models.ErrInvalidValue)
}

func TestValidateFloat(t *testing.T) {
	assert.NoError(t, ValidateFloat(1.5))
	assert.NoError(t, ValidateFloat(3))
	assert.NoError(t, ValidateFloat("2.75"))
	assert.ErrorIs(t, ValidateFloat("abc"), models.ErrInvalidValue)
	assert.ErrorIs(t, ValidateFloat(true), models.ErrInvalidValue)
}

func TestValidateInt(t *testing.T) {
	assert.NoError(t, ValidateInt(29))
	assert.NoError(t, ValidateInt("29"))
	// floats pass and are truncated when the value is written
	assert.NoError(t, ValidateInt(29.9))
	assert.ErrorIs(t, ValidateInt("29.9"), models.ErrInvalidValue)
	assert.ErrorIs(t, ValidateInt("abc"), models.ErrInvalidValue)
	assert.ErrorIs(t, ValidateInt(false), models.ErrInvalidValue)
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate(time.Now()))
	assert.NoError(t, ValidateDate("2026-09-01"))
	assert.NoError(t, ValidateDate("2026-09-01T10:30:00Z"))
	assert.ErrorIs(t, ValidateDate("01/09/2026"), models.ErrInvalidValue)
	assert.ErrorIs(t, ValidateDate(20260901), models.ErrInvalidValue)
}

func TestValidateBool(t *testing.T) {
	assert.NoError(t, ValidateBool(true))
	assert.NoError(t, ValidateBool(false))
	assert.ErrorIs(t, ValidateBool("true"), models.ErrInvalidValue)
	assert.ErrorIs(t, ValidateBool(1), models.ErrInvalidValue)
}

func TestValidateObject(t *testing.T) {
	saved := primitive.NewObjectID()
	assert.NoError(t, ValidateObject(saved))
	assert.NoError(t, ValidateObject(saved.Hex()))
	assert.ErrorIs(t, ValidateObject(primitive.NilObjectID), models.ErrInvalidValue)
	assert.ErrorIs(t, ValidateObject("not-a-hex-id"), models.ErrInvalidValue)
}

func TestValidateEnum(t *testing.T) {
	// enum is permissive here; choice membership is enforced by
	// ValueElement.Clean during submission
	assert.NoError(t, ValidateEnum("anything"))
	assert.NoError(t, ValidateEnum(42))
	assert.NoError(t, ValidateEnum(nil))
}
