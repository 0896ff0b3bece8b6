package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Flow แบบฟอร์ม/แบบสอบถามระดับบนสุด หนึ่ง Flow มีหลาย FormGroup
type Flow struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID   *primitive.ObjectID `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	Name      string              `bson:"name" json:"name"`
	Slug      string              `bson:"slug" json:"slug"`
	IsPublic  bool                `bson:"isPublic" json:"isPublic"`
	CreatedAt time.Time           `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// FlowWithGroups ใช้ตอบ GET flow เดียวพร้อมโครงสร้างทั้งหมด
type FlowWithGroups struct {
	Flow   Flow                    `json:"flow"`
	Groups []FormGroupWithElements `json:"groups"`
}

type FormGroupWithElements struct {
	FormGroup FormGroup     `json:"formGroup"`
	Elements  []FormElement `json:"elements"`
}
