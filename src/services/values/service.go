package values

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-Uppass-Flows/src/database"
	"Backend-Uppass-Flows/src/models"
	choiceSvc "Backend-Uppass-Flows/src/services/choices"
	"Backend-Uppass-Flows/src/services/flows"
	"Backend-Uppass-Flows/src/validators"
)

var valueElementCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	valueElementCollection = database.GetCollection(database.DBName, "valueElements")

	if valueElementCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

// GetFlowForm ประกอบชุด entry ของ flow สำหรับ render ฟอร์ม:
// element ที่มองเห็นได้ + live slot + choices ของ enum
func GetFlowForm(ctx context.Context, flowSlug string) ([]models.FormEntry, error) {
	elements, err := flows.VisibleElements(ctx, flowSlug)
	if err != nil {
		return nil, err
	}

	groups, choicesByID, err := loadChoiceContext(ctx, elements)
	if err != nil {
		return nil, err
	}

	return validators.BuildEntries(elements, groups, choicesByID)
}

// SubmitFlow ตรวจและบันทึกคำตอบทั้งชุดของ guest ต่อ flow
// คืน []FieldError เมื่อมีค่าที่ไม่ผ่าน (ไม่บันทึกอะไรเลย), error เมื่อ config พัง
func SubmitFlow(ctx context.Context, flowSlug string, guest *models.Guest, inputs []validators.ValueInput) ([]models.ValueElement, []models.FieldError, error) {
	elements, err := flows.VisibleElements(ctx, flowSlug)
	if err != nil {
		return nil, nil, err
	}

	groups, _, err := loadChoiceContext(ctx, elements)
	if err != nil {
		return nil, nil, err
	}

	var guestID *primitive.ObjectID
	if guest != nil {
		guestID = &guest.ID
	}

	valueElements, fieldErrs, err := validators.ValidateSubmission(elements, groups, inputs, guestID)
	if err != nil || len(fieldErrs) > 0 {
		return nil, fieldErrs, err
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(valueElements))
	for i := range valueElements {
		valueElements[i].ID = primitive.NewObjectID()
		valueElements[i].CreatedAt = now
		valueElements[i].UpdatedAt = now
		docs = append(docs, valueElements[i])
	}

	if len(docs) > 0 {
		if _, err := valueElementCollection.InsertMany(ctx, docs); err != nil {
			return nil, nil, err
		}
	}

	log.Printf("[values] inserted flow=%s guest=%v count=%d", flowSlug, guestID, len(docs))
	return valueElements, nil, nil
}

// GetValuesByElement คืนคำตอบทั้งหมดของ element หนึ่ง เรียงใหม่สุดก่อน
func GetValuesByElement(ctx context.Context, elementID primitive.ObjectID) ([]models.ValueElement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := valueElementCollection.Find(ctx, bson.M{"formElementId": elementID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var all []models.ValueElement
	if err = cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// GetValuesByGuest คืนคำตอบทั้งหมดของ guest หนึ่ง
func GetValuesByGuest(ctx context.Context, guestID primitive.ObjectID) ([]models.ValueElement, error) {
	cursor, err := valueElementCollection.Find(ctx, bson.M{"guestId": guestID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var all []models.ValueElement
	if err = cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// loadChoiceContext โหลด choice group + choice ของ element ชนิด enum ในชุดนี้
func loadChoiceContext(ctx context.Context, elements []models.FormElement) (
	map[primitive.ObjectID]*models.ChoiceGroup,
	map[primitive.ObjectID]models.Choice,
	error,
) {
	groups := make(map[primitive.ObjectID]*models.ChoiceGroup)
	choicesByID := make(map[primitive.ObjectID]models.Choice)

	for i := range elements {
		element := &elements[i]
		if element.Datatype != models.TypeEnum || element.ChoiceGroupID == nil {
			continue
		}
		if _, ok := groups[*element.ChoiceGroupID]; ok {
			continue
		}

		group, err := choiceSvc.GetChoiceGroupByID(ctx, *element.ChoiceGroupID)
		if err != nil {
			return nil, nil, err
		}
		groups[group.ID] = group

		members, err := choiceSvc.GetChoicesByIDs(ctx, group.ChoiceIDs)
		if err != nil {
			return nil, nil, err
		}
		for _, c := range members {
			choicesByID[c.ID] = c
		}
	}
	return groups, choicesByID, nil
}
