package flows

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-Uppass-Flows/src/database"
	"Backend-Uppass-Flows/src/models"
	"Backend-Uppass-Flows/src/utils"
)

var (
	flowCollection         *mongo.Collection
	formGroupCollection    *mongo.Collection
	formElementCollection  *mongo.Collection
	valueElementCollection *mongo.Collection
)

var ErrFlowNotFound = errors.New("flow not found")
var ErrFormGroupNotFound = errors.New("form group not found")
var ErrFormElementNotFound = errors.New("form element not found")

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	flowCollection = database.GetCollection(database.DBName, "flows")
	formGroupCollection = database.GetCollection(database.DBName, "formGroups")
	formElementCollection = database.GetCollection(database.DBName, "formElements")
	valueElementCollection = database.GetCollection(database.DBName, "valueElements")

	if flowCollection == nil || formGroupCollection == nil || formElementCollection == nil || valueElementCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

// CreateFlow insert flow แล้วค่อย update slug (ต้องมี id ก่อนถึง derive slug ได้)
func CreateFlow(ctx context.Context, flow *models.Flow) error {
	now := time.Now()
	flow.CreatedAt = now
	flow.UpdatedAt = now

	res, err := flowCollection.InsertOne(ctx, flow)
	if err != nil {
		return err
	}
	flow.ID = res.InsertedID.(primitive.ObjectID)

	flow.Slug = utils.Slugify(flow.Name, flow.ID)
	_, err = flowCollection.UpdateOne(ctx,
		bson.M{"_id": flow.ID},
		bson.M{"$set": bson.M{"slug": flow.Slug}},
	)
	return err
}

// GetFlows รายการ flow แบบแบ่งหน้า ค้นจากชื่อได้
func GetFlows(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := flowCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort := bson.D{}
	for field, order := range params.GetSortOrder() {
		sort = append(sort, bson.E{Key: field, Value: order})
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(sort)

	cursor, err := flowCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var flows []models.Flow
	if err = cursor.All(ctx, &flows); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(flows, total, params), nil
}

// GetFlowBySlug คืน flow เดียว
func GetFlowBySlug(ctx context.Context, slug string) (*models.Flow, error) {
	var flow models.Flow
	err := flowCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&flow)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFlowNotFound
		}
		return nil, err
	}
	return &flow, nil
}

// GetFlowDetail คืน flow พร้อม group และ element ทั้งหมด เรียงตาม displayOrder
func GetFlowDetail(ctx context.Context, slug string) (*models.FlowWithGroups, error) {
	flow, err := GetFlowBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	groups, err := getFormGroups(ctx, flow.ID)
	if err != nil {
		return nil, err
	}

	detail := &models.FlowWithGroups{Flow: *flow, Groups: []models.FormGroupWithElements{}}
	for _, group := range groups {
		elements, err := getFormElements(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		detail.Groups = append(detail.Groups, models.FormGroupWithElements{
			FormGroup: group,
			Elements:  elements,
		})
	}
	return detail, nil
}

// UpdateFlow แก้ชื่อ/สถานะ public แล้ว derive slug ใหม่จากชื่อ + id เดิม
func UpdateFlow(ctx context.Context, slug string, name string, isPublic bool) (*models.Flow, error) {
	flow, err := GetFlowBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	flow.Name = name
	flow.IsPublic = isPublic
	flow.Slug = utils.Slugify(name, flow.ID)
	flow.UpdatedAt = time.Now()

	_, err = flowCollection.UpdateOne(ctx,
		bson.M{"_id": flow.ID},
		bson.M{"$set": bson.M{
			"name":      flow.Name,
			"isPublic":  flow.IsPublic,
			"slug":      flow.Slug,
			"updatedAt": flow.UpdatedAt,
		}},
	)
	if err != nil {
		return nil, err
	}
	return flow, nil
}

// DeleteFlow ลบ flow พร้อมลูกทั้งสาย: group → element → value
func DeleteFlow(ctx context.Context, slug string) error {
	flow, err := GetFlowBySlug(ctx, slug)
	if err != nil {
		return err
	}

	groupIDs, err := collectIDs(ctx, formGroupCollection, bson.M{"flowId": flow.ID})
	if err != nil {
		return err
	}

	if len(groupIDs) > 0 {
		elementIDs, err := collectIDs(ctx, formElementCollection, bson.M{"formGroupId": bson.M{"$in": groupIDs}})
		if err != nil {
			return err
		}
		if len(elementIDs) > 0 {
			if _, err := valueElementCollection.DeleteMany(ctx, bson.M{"formElementId": bson.M{"$in": elementIDs}}); err != nil {
				return err
			}
		}
		if _, err := formElementCollection.DeleteMany(ctx, bson.M{"formGroupId": bson.M{"$in": groupIDs}}); err != nil {
			return err
		}
		if _, err := formGroupCollection.DeleteMany(ctx, bson.M{"flowId": flow.ID}); err != nil {
			return err
		}
	}

	_, err = flowCollection.DeleteOne(ctx, bson.M{"_id": flow.ID})
	return err
}

// SetFlowsOwnerNull ตัด owner ออกจากทุก flow ของ user (ใช้ตอนลบ user)
func SetFlowsOwnerNull(ctx context.Context, ownerID primitive.ObjectID) error {
	_, err := flowCollection.UpdateMany(ctx,
		bson.M{"ownerId": ownerID},
		bson.M{"$unset": bson.M{"ownerId": ""}},
	)
	return err
}

// CreateFormGroup สร้าง section ใต้ flow พร้อม two-phase slug
// ถ้า displayOrder ไม่ได้ส่งมา (0) จะรับ ordinal ถัดไปของ flow
func CreateFormGroup(ctx context.Context, group *models.FormGroup) error {
	if group.DisplayOrder == 0 {
		next, err := nextDisplayOrder(ctx, formGroupCollection, bson.M{"flowId": group.FlowID})
		if err != nil {
			return err
		}
		group.DisplayOrder = next
	}

	res, err := formGroupCollection.InsertOne(ctx, group)
	if err != nil {
		return err
	}
	group.ID = res.InsertedID.(primitive.ObjectID)

	group.Slug = utils.Slugify(group.Name, group.ID)
	_, err = formGroupCollection.UpdateOne(ctx,
		bson.M{"_id": group.ID},
		bson.M{"$set": bson.M{"slug": group.Slug}},
	)
	return err
}

// GetFormGroupBySlug คืน form group เดียว
func GetFormGroupBySlug(ctx context.Context, slug string) (*models.FormGroup, error) {
	var group models.FormGroup
	err := formGroupCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// UpdateFormGroup แก้ group แล้ว derive slug ใหม่
func UpdateFormGroup(ctx context.Context, slug string, name string, displayOrder int, isPublic bool) (*models.FormGroup, error) {
	group, err := GetFormGroupBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	group.Name = name
	group.DisplayOrder = displayOrder
	group.IsPublic = isPublic
	group.Slug = utils.Slugify(name, group.ID)

	_, err = formGroupCollection.UpdateOne(ctx,
		bson.M{"_id": group.ID},
		bson.M{"$set": bson.M{
			"name":         group.Name,
			"displayOrder": group.DisplayOrder,
			"isPublic":     group.IsPublic,
			"slug":         group.Slug,
		}},
	)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// DeleteFormGroup ลบ group พร้อม element และ value ใต้มัน
func DeleteFormGroup(ctx context.Context, slug string) error {
	group, err := GetFormGroupBySlug(ctx, slug)
	if err != nil {
		return err
	}

	elementIDs, err := collectIDs(ctx, formElementCollection, bson.M{"formGroupId": group.ID})
	if err != nil {
		return err
	}
	if len(elementIDs) > 0 {
		if _, err := valueElementCollection.DeleteMany(ctx, bson.M{"formElementId": bson.M{"$in": elementIDs}}); err != nil {
			return err
		}
		if _, err := formElementCollection.DeleteMany(ctx, bson.M{"formGroupId": group.ID}); err != nil {
			return err
		}
	}

	_, err = formGroupCollection.DeleteOne(ctx, bson.M{"_id": group.ID})
	return err
}

// CreateFormElement ตรวจ schema invariant ก่อน insert แล้วค่อย derive slug
func CreateFormElement(ctx context.Context, element *models.FormElement) error {
	if err := element.Clean(); err != nil {
		return err
	}

	now := time.Now()
	element.CreatedAt = now
	element.UpdatedAt = now

	if element.DisplayOrder == 0 {
		next, err := nextDisplayOrder(ctx, formElementCollection, bson.M{"formGroupId": element.FormGroupID})
		if err != nil {
			return err
		}
		element.DisplayOrder = next
	}

	res, err := formElementCollection.InsertOne(ctx, element)
	if err != nil {
		return err
	}
	element.ID = res.InsertedID.(primitive.ObjectID)

	element.Slug = utils.Slugify(element.Name, element.ID)
	_, err = formElementCollection.UpdateOne(ctx,
		bson.M{"_id": element.ID},
		bson.M{"$set": bson.M{"slug": element.Slug}},
	)
	return err
}

// GetFormElementBySlug คืน element เดียว
func GetFormElementBySlug(ctx context.Context, slug string) (*models.FormElement, error) {
	var element models.FormElement
	err := formElementCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&element)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormElementNotFound
		}
		return nil, err
	}
	return &element, nil
}

// UpdateFormElement แก้ element ตรวจ invariant เดิมก่อนบันทึก
func UpdateFormElement(ctx context.Context, slug string, update *models.FormElement) (*models.FormElement, error) {
	element, err := GetFormElementBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	element.Name = update.Name
	element.Description = update.Description
	element.Datatype = update.Datatype
	element.Required = update.Required
	element.DisplayOrder = update.DisplayOrder
	element.ChoiceGroupID = update.ChoiceGroupID
	element.IsPublic = update.IsPublic

	if err := element.Clean(); err != nil {
		return nil, err
	}

	element.Slug = utils.Slugify(element.Name, element.ID)
	element.UpdatedAt = time.Now()

	_, err = formElementCollection.UpdateOne(ctx,
		bson.M{"_id": element.ID},
		bson.M{"$set": bson.M{
			"name":          element.Name,
			"description":   element.Description,
			"datatype":      element.Datatype,
			"required":      element.Required,
			"displayOrder":  element.DisplayOrder,
			"choiceGroupId": element.ChoiceGroupID,
			"isPublic":      element.IsPublic,
			"slug":          element.Slug,
			"updatedAt":     element.UpdatedAt,
		}},
	)
	if err != nil {
		return nil, err
	}
	return element, nil
}

// DeleteFormElement ลบ element พร้อม value ของมัน
func DeleteFormElement(ctx context.Context, slug string) error {
	element, err := GetFormElementBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if _, err := valueElementCollection.DeleteMany(ctx, bson.M{"formElementId": element.ID}); err != nil {
		return err
	}
	_, err = formElementCollection.DeleteOne(ctx, bson.M{"_id": element.ID})
	return err
}

// VisibleElements คืน element ที่เปิด public ของ flow เรียงตาม displayOrder
// เก็บจาก public group ตัวแรกเท่านั้น group ถัดไปถูกข้ามทั้งหมด
func VisibleElements(ctx context.Context, flowSlug string) ([]models.FormElement, error) {
	flow, err := GetFlowBySlug(ctx, flowSlug)
	if err != nil {
		return nil, err
	}

	groups, err := getFormGroups(ctx, flow.ID)
	if err != nil {
		return nil, err
	}

	group := models.FirstPublicGroup(groups)
	if group == nil {
		return []models.FormElement{}, nil
	}

	elements, err := getFormElements(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	return models.PublicElements(elements), nil
}
