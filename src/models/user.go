package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User เจ้าของ flow (admin)
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // ✅ ส่งมาได้จาก frontend, แต่ไม่ส่งกลับ
	Name     string             `bson:"name" json:"name"`
}
