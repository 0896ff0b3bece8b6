package utils

import (
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slugify สร้าง slug จากชื่อ + id: slugify(name) + "_" + id
// ต้องมี id ก่อน (insert แล้ว) ถึงจะคำนวณได้ เรียกซ้ำด้วยชื่อเดิมได้ผลเดิม
func Slugify(name string, id primitive.ObjectID) string {
	return slug.Make(name) + "_" + id.Hex()
}
