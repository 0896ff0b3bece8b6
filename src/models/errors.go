package models

import "errors"

// Error sentinels สำหรับ validation ทั้งระบบ
var (
	// ErrSchemaInvalid: FormElement ผิด invariant (enum ⟺ choice group)
	ErrSchemaInvalid = errors.New("schema invalid")

	// ErrInvalidValue: ค่าที่ส่งมาไม่ผ่าน datatype validator
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidChoice: เลือก choice นอก choice group ของ element
	ErrInvalidChoice = errors.New("choice not valid")

	// ErrUnknownDatatype: datatype ไม่อยู่ใน registry/slot table
	// ถือเป็น configuration error ไม่ใช่ user error
	ErrUnknownDatatype = errors.New("unknown datatype")
)

// FieldError ปัญหาของ element เดียวตอน submit ฟอร์ม
// เก็บรวมเป็น list เพื่อให้ UI แสดงทุกปัญหาพร้อมกัน
type FieldError struct {
	ElementID string `json:"elementId"`
	Slot      string `json:"slot,omitempty"`
	Message   string `json:"message"`
}
