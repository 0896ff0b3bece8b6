// Package validators คือ registry กลางของ datatype → validation function
// หนึ่ง datatype ต่อหนึ่ง validator
package validators

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-Uppass-Flows/src/models"
)

// ValidateFunc ตรวจค่าดิบหนึ่งค่า คืน error ห่อ models.ErrInvalidValue เมื่อไม่ผ่าน
type ValidateFunc func(value any) error

// TypeObject อยู่ใน registry แต่ยังไม่มี datatype ไหนใช้ (reserved)
const TypeObject models.Datatype = "object"

// registry มีเจ็ดคีย์: ไม่มี file (ค่า file ตรวจเป็น reference
// ตอน SetValue ไม่ผ่าน registry)
var registry = map[models.Datatype]ValidateFunc{
	models.TypeText:    ValidateText,
	models.TypeFloat:   ValidateFloat,
	models.TypeInt:     ValidateInt,
	models.TypeDate:    ValidateDate,
	models.TypeBoolean: ValidateBool,
	TypeObject:         ValidateObject,
	models.TypeEnum:    ValidateEnum,
}

// Get คืน validator ของ datatype (หนึ่งตัวเสมอ)
// datatype ที่ไม่รู้จักเป็น configuration error ไม่ใช่ user error
func Get(dt models.Datatype) ([]ValidateFunc, error) {
	fn, ok := registry[dt]
	if !ok {
		return nil, fmt.Errorf("%w: no validator registered for %q", models.ErrUnknownDatatype, dt)
	}
	return []ValidateFunc{fn}, nil
}

// ValidateText รับเฉพาะ string
func ValidateText(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("%w: must be a string", models.ErrInvalidValue)
	}
	return nil
}

// ValidateFloat รับค่าที่แปลงเป็น float ได้
func ValidateFloat(value any) error {
	switch v := value.(type) {
	case float64, float32, int, int32, int64:
		return nil
	case string:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%w: must be a float", models.ErrInvalidValue)
		}
		return nil
	}
	return fmt.Errorf("%w: must be a float", models.ErrInvalidValue)
}

// ValidateInt รับค่าที่แปลงเป็น integer ได้
// float ผ่าน (truncate ตอน set) แต่ string ต้องเป็นจำนวนเต็ม
func ValidateInt(value any) error {
	switch v := value.(type) {
	case int, int32, int64, float64, float32:
		return nil
	case string:
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("%w: must be an integer", models.ErrInvalidValue)
		}
		return nil
	}
	return fmt.Errorf("%w: must be an integer", models.ErrInvalidValue)
}

// ValidateDate รับ time.Time หรือ string ตาม models.DateLayouts
func ValidateDate(value any) error {
	switch v := value.(type) {
	case time.Time:
		return nil
	case string:
		for _, layout := range models.DateLayouts {
			if _, err := time.Parse(layout, v); err == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: must be a date or datetime", models.ErrInvalidValue)
}

// ValidateBool รับเฉพาะ boolean
func ValidateBool(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("%w: must be a boolean", models.ErrInvalidValue)
	}
	return nil
}

// ValidateObject รับเฉพาะ reference ของ entity ที่บันทึกแล้ว (ObjectID ไม่เป็นศูนย์)
func ValidateObject(value any) error {
	switch v := value.(type) {
	case primitive.ObjectID:
		if v.IsZero() {
			return fmt.Errorf("%w: entity has not been saved yet", models.ErrInvalidValue)
		}
		return nil
	case string:
		oid, err := primitive.ObjectIDFromHex(v)
		if err != nil || oid.IsZero() {
			return fmt.Errorf("%w: must be a saved entity reference", models.ErrInvalidValue)
		}
		return nil
	}
	return fmt.Errorf("%w: must be a saved entity reference", models.ErrInvalidValue)
}

// ValidateEnum ปล่อยผ่านทุกค่า การตรวจว่า choice อยู่ในกลุ่มทำที่
// ValueElement.Clean ตอน submit
func ValidateEnum(value any) error {
	return nil
}
