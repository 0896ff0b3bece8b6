package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Choice ตัวเลือกเดียวใน catalog ใช้ซ้ำได้หลาย ChoiceGroup
type Choice struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Value string             `bson:"value" json:"value"`
}

// ChoiceGroup ชุดตัวเลือกตั้งชื่อได้ อ้างโดย FormElement ชนิด enum
// ความสัมพันธ์ many-to-many เก็บฝั่ง group เป็น choiceIds
type ChoiceGroup struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string               `bson:"name" json:"name"`
	ChoiceIDs []primitive.ObjectID `bson:"choiceIds,omitempty" json:"choiceIds,omitempty"`
}

// Contains รายงานว่า choice อยู่ในกลุ่มนี้หรือไม่
func (g *ChoiceGroup) Contains(choiceID primitive.ObjectID) bool {
	for _, id := range g.ChoiceIDs {
		if id == choiceID {
			return true
		}
	}
	return false
}
