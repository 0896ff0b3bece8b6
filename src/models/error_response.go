package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // รายละเอียดของ Error
}

// ValidationErrorResponse ส่งกลับเมื่อ submission มีค่าที่ไม่ผ่าน validation
type ValidationErrorResponse struct {
	Status int          `json:"status"`
	Errors []FieldError `json:"errors"`
}
