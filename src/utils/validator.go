package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct ตรวจ DTO ขาเข้าตาม tag `validate` คืนข้อความรวมของ field ที่พลาด
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationMessage สรุป validator.ValidationErrors เป็นข้อความเดียว
func ValidationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" failed on "+fe.Tag())
	}
	return strings.Join(msgs, ", ")
}
