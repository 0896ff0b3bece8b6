package models

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValueElement คำตอบของ guest หนึ่งคนต่อ FormElement หนึ่งตัว
// เป็น wide row: มี slot ครบทั้งเจ็ดชนิดเสมอ แต่ active จริงแค่ slot เดียว
// ตาม datatype ของ element เจ้าของ slot อื่นถือว่า unset และไม่ถูกล้างอัตโนมัติ
type ValueElement struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	FormElementID primitive.ObjectID  `bson:"formElementId" json:"formElementId"`
	GuestID       *primitive.ObjectID `bson:"guestId,omitempty" json:"guestId,omitempty"`
	ValueText     *string             `bson:"valueText,omitempty" json:"valueText,omitempty"`
	ValueFloat    *float64            `bson:"valueFloat,omitempty" json:"valueFloat,omitempty"`
	ValueInt      *int64              `bson:"valueInt,omitempty" json:"valueInt,omitempty"`
	ValueDate     *time.Time          `bson:"valueDate,omitempty" json:"valueDate,omitempty"`
	ValueBool     *bool               `bson:"valueBool,omitempty" json:"valueBool,omitempty"`
	ValueChoiceID *primitive.ObjectID `bson:"valueChoiceId,omitempty" json:"valueChoiceId,omitempty"`
	ValueFile     *string             `bson:"valueFile,omitempty" json:"valueFile,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt,omitempty" json:"updatedAt"`
}

const (
	SlotText   = "valueText"
	SlotFloat  = "valueFloat"
	SlotInt    = "valueInt"
	SlotDate   = "valueDate"
	SlotBool   = "valueBool"
	SlotChoice = "valueChoice"
	SlotFile   = "valueFile"
)

// datatypeSlots ตาราง datatype → slot ครอบคลุมทั้งเจ็ดชนิด
var datatypeSlots = map[Datatype]string{
	TypeText:    SlotText,
	TypeFloat:   SlotFloat,
	TypeInt:     SlotInt,
	TypeDate:    SlotDate,
	TypeBoolean: SlotBool,
	TypeEnum:    SlotChoice,
	TypeFile:    SlotFile,
}

// SlotFor คืนชื่อ slot ที่ active สำหรับ datatype
func SlotFor(dt Datatype) (string, error) {
	slot, ok := datatypeSlots[dt]
	if !ok {
		return "", fmt.Errorf("%w: %q has no value slot", ErrUnknownDatatype, dt)
	}
	return slot, nil
}

// HiddenSlots คืนชื่อ slot ที่ต้องซ่อนจาก input สำหรับ datatype
// (presentation contract ตัว entity ยังเก็บครบทุก slot)
func HiddenSlots(dt Datatype) ([]string, error) {
	live, err := SlotFor(dt)
	if err != nil {
		return nil, err
	}
	hidden := make([]string, 0, len(datatypeSlots)-1)
	for _, t := range Datatypes {
		if slot := datatypeSlots[t]; slot != live {
			hidden = append(hidden, slot)
		}
	}
	return hidden, nil
}

// LiveSlot ชื่อ slot ที่ active ของ value ตาม element เจ้าของ
func (v *ValueElement) LiveSlot(element *FormElement) (string, error) {
	return SlotFor(element.Datatype)
}

// Value อ่านค่าจาก slot ที่ active
func (v *ValueElement) Value(element *FormElement) (any, error) {
	slot, err := SlotFor(element.Datatype)
	if err != nil {
		return nil, err
	}
	switch slot {
	case SlotText:
		if v.ValueText == nil {
			return nil, nil
		}
		return *v.ValueText, nil
	case SlotFloat:
		if v.ValueFloat == nil {
			return nil, nil
		}
		return *v.ValueFloat, nil
	case SlotInt:
		if v.ValueInt == nil {
			return nil, nil
		}
		return *v.ValueInt, nil
	case SlotDate:
		if v.ValueDate == nil {
			return nil, nil
		}
		return *v.ValueDate, nil
	case SlotBool:
		if v.ValueBool == nil {
			return nil, nil
		}
		return *v.ValueBool, nil
	case SlotChoice:
		if v.ValueChoiceID == nil {
			return nil, nil
		}
		return *v.ValueChoiceID, nil
	case SlotFile:
		if v.ValueFile == nil {
			return nil, nil
		}
		return *v.ValueFile, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDatatype, element.Datatype)
}

// SetValue เขียนค่าลง slot ที่ active โดย coerce จากค่าดิบ (หลังผ่าน validator แล้ว)
// nil ล้างเฉพาะ slot ที่ active
func (v *ValueElement) SetValue(element *FormElement, raw any) error {
	slot, err := SlotFor(element.Datatype)
	if err != nil {
		return err
	}

	switch slot {
	case SlotText:
		if raw == nil {
			v.ValueText = nil
			return nil
		}
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("%w: must be a string", ErrInvalidValue)
		}
		v.ValueText = &s

	case SlotFloat:
		if raw == nil {
			v.ValueFloat = nil
			return nil
		}
		f, err := CoerceFloat(raw)
		if err != nil {
			return err
		}
		v.ValueFloat = &f

	case SlotInt:
		if raw == nil {
			v.ValueInt = nil
			return nil
		}
		n, err := CoerceInt(raw)
		if err != nil {
			return err
		}
		v.ValueInt = &n

	case SlotDate:
		if raw == nil {
			v.ValueDate = nil
			return nil
		}
		t, err := CoerceDate(raw)
		if err != nil {
			return err
		}
		v.ValueDate = &t

	case SlotBool:
		if raw == nil {
			v.ValueBool = nil
			return nil
		}
		b, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("%w: must be a boolean", ErrInvalidValue)
		}
		v.ValueBool = &b

	case SlotChoice:
		if raw == nil {
			v.ValueChoiceID = nil
			return nil
		}
		id, err := CoerceObjectID(raw)
		if err != nil {
			return err
		}
		v.ValueChoiceID = &id

	case SlotFile:
		if raw == nil {
			v.ValueFile = nil
			return nil
		}
		ref, ok := raw.(string)
		if !ok {
			return fmt.Errorf("%w: must be a file reference", ErrInvalidValue)
		}
		v.ValueFile = &ref
	}
	return nil
}

// Clean ตรวจ cross-entity invariant: ถ้า element เป็น enum และมีการเลือก choice
// choice นั้นต้องเป็นสมาชิกของ choice group ที่ element ผูกไว้
func (v *ValueElement) Clean(element *FormElement, group *ChoiceGroup) error {
	if element.Datatype != TypeEnum || v.ValueChoiceID == nil {
		return nil
	}
	if group == nil || !group.Contains(*v.ValueChoiceID) {
		return ErrInvalidChoice
	}
	return nil
}

// CoerceFloat แปลงค่าดิบเป็น float64 ตาม policy ของ datatype float
func CoerceFloat(raw any) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: must be a float", ErrInvalidValue)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: must be a float", ErrInvalidValue)
}

// CoerceInt แปลงค่าดิบเป็น int64 ตาม policy ของ datatype int
// float ถูก truncate, string ต้อง parse เป็นจำนวนเต็มได้
func CoerceInt(raw any) (int64, error) {
	switch n := raw.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case float32:
		return int64(n), nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: must be an integer", ErrInvalidValue)
		}
		return i, nil
	}
	return 0, fmt.Errorf("%w: must be an integer", ErrInvalidValue)
}

// DateLayouts รูปแบบ string ที่รับเป็นค่า date ได้
var DateLayouts = []string{time.RFC3339, "2006-01-02"}

// CoerceDate แปลงค่าดิบเป็น time.Time
func CoerceDate(raw any) (time.Time, error) {
	switch d := raw.(type) {
	case time.Time:
		return d, nil
	case string:
		for _, layout := range DateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("%w: must be a date or datetime", ErrInvalidValue)
}

// CoerceObjectID แปลงค่าดิบเป็น ObjectID (รับ ObjectID ตรง ๆ หรือ hex string)
func CoerceObjectID(raw any) (primitive.ObjectID, error) {
	switch id := raw.(type) {
	case primitive.ObjectID:
		return id, nil
	case string:
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return primitive.NilObjectID, fmt.Errorf("%w: must be a choice id", ErrInvalidValue)
		}
		return oid, nil
	}
	return primitive.NilObjectID, fmt.Errorf("%w: must be a choice id", ErrInvalidValue)
}
