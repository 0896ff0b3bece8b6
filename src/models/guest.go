package models

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Guest ผู้ตอบแบบไม่ล็อกอิน ระบุตัวด้วย IP
// token เป็น md5 ของ ip ใช้เป็น dedup key ไม่ใช่ credential
type Guest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	IP        string             `bson:"ip" json:"ip"`
	Token     string             `bson:"token" json:"token"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

// ApplyToken คำนวณ token จาก ip ใหม่ทุกครั้งก่อน save (idempotent)
func (g *Guest) ApplyToken() {
	sum := md5.Sum([]byte(g.IP))
	g.Token = hex.EncodeToString(sum[:])
}
