package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormGroup section ภายใน Flow เรียงตาม displayOrder
type FormGroup struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FlowID       primitive.ObjectID `bson:"flowId" json:"flowId"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	DisplayOrder int                `bson:"displayOrder" json:"displayOrder"`
	IsPublic     bool               `bson:"isPublic" json:"isPublic"`
}

// FirstPublicGroup เลือก public group ตัวแรกตามลำดับ displayOrder
// (group อื่นถูกข้ามทั้งหมด)
func FirstPublicGroup(groups []FormGroup) *FormGroup {
	for i := range groups {
		if groups[i].IsPublic {
			return &groups[i]
		}
	}
	return nil
}
