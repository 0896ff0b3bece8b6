package validators

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-Uppass-Flows/src/models"
)

// ValueInput ค่าดิบหนึ่งค่าจาก client ต่อหนึ่ง element
type ValueInput struct {
	ElementID string `json:"elementId" validate:"required"`
	Value     any    `json:"value"`
}

// ValidateSubmission ตรวจค่าทุก element อย่างอิสระต่อกัน:
// ปัญหาระดับ user เก็บรวมเป็น []FieldError จนครบทุกตัว
// ปัญหาระดับ configuration (datatype ไม่รู้จัก) คืนเป็น error ทันที
// คืน ValueElement ที่พร้อม insert เมื่อไม่มี field error
func ValidateSubmission(
	elements []models.FormElement,
	groups map[primitive.ObjectID]*models.ChoiceGroup,
	inputs []ValueInput,
	guestID *primitive.ObjectID,
) ([]models.ValueElement, []models.FieldError, error) {

	byElement := make(map[string]ValueInput, len(inputs))
	for _, in := range inputs {
		byElement[in.ElementID] = in
	}

	var out []models.ValueElement
	var fieldErrs []models.FieldError

	for i := range elements {
		element := &elements[i]

		slot, err := models.SlotFor(element.Datatype)
		if err != nil {
			return nil, nil, err
		}

		in, ok := byElement[element.ID.Hex()]
		if !ok || isEmpty(in.Value) {
			if element.Required {
				fieldErrs = append(fieldErrs, models.FieldError{
					ElementID: element.ID.Hex(),
					Slot:      slot,
					Message:   "this field is required",
				})
			}
			continue
		}

		// file ไม่อยู่ใน registry: reference ถูกตรวจตอน SetValue
		if element.Datatype != models.TypeFile {
			fns, err := Get(element.Datatype)
			if err != nil {
				return nil, nil, err
			}
			if verr := runValidators(fns, in.Value); verr != nil {
				fieldErrs = append(fieldErrs, models.FieldError{
					ElementID: element.ID.Hex(),
					Slot:      slot,
					Message:   verr.Error(),
				})
				continue
			}
		}

		value := models.ValueElement{
			FormElementID: element.ID,
			GuestID:       guestID,
		}
		if err := value.SetValue(element, in.Value); err != nil {
			if errors.Is(err, models.ErrInvalidValue) {
				fieldErrs = append(fieldErrs, models.FieldError{
					ElementID: element.ID.Hex(),
					Slot:      slot,
					Message:   err.Error(),
				})
				continue
			}
			return nil, nil, err
		}

		if element.Datatype == models.TypeEnum {
			var group *models.ChoiceGroup
			if element.ChoiceGroupID != nil {
				group = groups[*element.ChoiceGroupID]
			}
			if cerr := value.Clean(element, group); cerr != nil {
				fieldErrs = append(fieldErrs, models.FieldError{
					ElementID: element.ID.Hex(),
					Slot:      slot,
					Message:   cerr.Error(),
				})
				continue
			}
		}

		out = append(out, value)
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}
	return out, nil, nil
}

// BuildEntries ประกอบ presentation contract ต่อ element:
// slot เดียวที่แก้ได้ + slot ที่ต้องซ่อน + choices เฉพาะของ group (นำด้วย sentinel)
func BuildEntries(
	elements []models.FormElement,
	groups map[primitive.ObjectID]*models.ChoiceGroup,
	choicesByID map[primitive.ObjectID]models.Choice,
) ([]models.FormEntry, error) {

	entries := make([]models.FormEntry, 0, len(elements))
	for i := range elements {
		element := elements[i]

		live, err := models.SlotFor(element.Datatype)
		if err != nil {
			return nil, err
		}
		hidden, err := models.HiddenSlots(element.Datatype)
		if err != nil {
			return nil, err
		}

		entry := models.FormEntry{
			Element:     element,
			LiveSlot:    live,
			HiddenSlots: hidden,
		}

		if element.Datatype == models.TypeEnum && element.ChoiceGroupID != nil {
			if group := groups[*element.ChoiceGroupID]; group != nil {
				entry.Choices = append(entry.Choices, models.NoSelection)
				for _, choiceID := range group.ChoiceIDs {
					if c, ok := choicesByID[choiceID]; ok {
						entry.Choices = append(entry.Choices, models.ChoiceOption{
							ID:    c.ID.Hex(),
							Value: c.Value,
						})
					}
				}
			}
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

func runValidators(fns []ValidateFunc, value any) error {
	for _, fn := range fns {
		if err := fn(value); err != nil {
			return err
		}
	}
	return nil
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}
