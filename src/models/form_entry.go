package models

// ChoiceOption ตัวเลือกที่ส่งให้ฝั่ง render สำหรับ slot valueChoice
type ChoiceOption struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// NoSelection sentinel "ยังไม่เลือก" นำหน้า choices ของ enum entry เสมอ
var NoSelection = ChoiceOption{ID: "", Value: "-----"}

// FormEntry สัญญาระหว่าง core กับ presentation layer ต่อหนึ่ง element:
// ให้ render input เดียวตาม LiveSlot และซ่อน slot ที่เหลือ
// Choices มีเฉพาะ enum และเป็นของ choice group ที่ element ผูกไว้เท่านั้น
type FormEntry struct {
	Element     FormElement    `json:"element"`
	LiveSlot    string         `json:"liveSlot"`
	HiddenSlots []string       `json:"hiddenSlots"`
	Choices     []ChoiceOption `json:"choices,omitempty"`
}
