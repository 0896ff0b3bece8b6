package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Datatype ชนิดข้อมูลของ FormElement
type Datatype string

const (
	TypeText    Datatype = "text"
	TypeFloat   Datatype = "float"
	TypeInt     Datatype = "int"
	TypeDate    Datatype = "date"
	TypeBoolean Datatype = "bool"
	TypeEnum    Datatype = "enum"
	TypeFile    Datatype = "file"
)

// Datatypes ลำดับชนิดข้อมูลทั้งหมดที่ element ประกาศได้
var Datatypes = []Datatype{
	TypeText, TypeFloat, TypeInt, TypeDate, TypeBoolean, TypeEnum, TypeFile,
}

// FormElement คำถาม/ฟิลด์เดียวภายใน FormGroup
type FormElement struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	FormGroupID   primitive.ObjectID  `bson:"formGroupId" json:"formGroupId"`
	Name          string              `bson:"name" json:"name"`
	Description   string              `bson:"description,omitempty" json:"description,omitempty"`
	Slug          string              `bson:"slug" json:"slug"`
	Datatype      Datatype            `bson:"datatype" json:"datatype"`
	Required      bool                `bson:"required" json:"required"`
	DisplayOrder  int                 `bson:"displayOrder" json:"displayOrder"`
	ChoiceGroupID *primitive.ObjectID `bson:"choiceGroupId,omitempty" json:"choiceGroupId,omitempty"`
	IsPublic      bool                `bson:"isPublic" json:"isPublic"`
	CreatedAt     time.Time           `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// Clean ตรวจ invariant ของ schema ก่อนบันทึก:
// choice group ต้องมาคู่กับ datatype enum เท่านั้น
func (e *FormElement) Clean() error {
	if e.Datatype == TypeEnum && e.ChoiceGroupID == nil {
		return fmt.Errorf("%w: you must set the choice group for a multiple choice form element", ErrSchemaInvalid)
	}
	if e.Datatype != TypeEnum && e.ChoiceGroupID != nil {
		return fmt.Errorf("%w: you can only assign a choice group to a multiple choice form element", ErrSchemaInvalid)
	}
	return nil
}

// PublicElements กรองเฉพาะ element ที่เปิด public (ลำดับคงเดิม)
func PublicElements(elements []FormElement) []FormElement {
	visible := make([]FormElement, 0, len(elements))
	for _, e := range elements {
		if e.IsPublic {
			visible = append(visible, e)
		}
	}
	return visible
}
