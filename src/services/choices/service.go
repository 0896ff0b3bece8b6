package choices

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Backend-Uppass-Flows/src/database"
	"Backend-Uppass-Flows/src/models"
)

var (
	choiceCollection      *mongo.Collection
	choiceGroupCollection *mongo.Collection
	formElementCollection *mongo.Collection
)

var (
	ErrChoiceNotFound      = errors.New("choice not found")
	ErrChoiceGroupNotFound = errors.New("choice group not found")

	// ErrChoiceGroupInUse: มี form element อ้าง group นี้อยู่ ห้ามลบเงียบ ๆ
	ErrChoiceGroupInUse = errors.New("choice group is referenced by form elements")

	// ErrChoiceInUse: choice ยังเป็นสมาชิกของ group
	ErrChoiceInUse = errors.New("choice is still a member of a choice group")
)

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	choiceCollection = database.GetCollection(database.DBName, "choices")
	choiceGroupCollection = database.GetCollection(database.DBName, "choiceGroups")
	formElementCollection = database.GetCollection(database.DBName, "formElements")

	if choiceCollection == nil || choiceGroupCollection == nil || formElementCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

// CreateChoice เพิ่มตัวเลือกเข้า catalog
func CreateChoice(ctx context.Context, choice *models.Choice) error {
	res, err := choiceCollection.InsertOne(ctx, choice)
	if err != nil {
		return err
	}
	choice.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetChoices คืนตัวเลือกทั้ง catalog
func GetChoices(ctx context.Context) ([]models.Choice, error) {
	cursor, err := choiceCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var all []models.Choice
	if err = cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// GetChoicesByIDs คืนตัวเลือกตาม id เรียงตามลำดับใน ids
func GetChoicesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Choice, error) {
	if len(ids) == 0 {
		return []models.Choice{}, nil
	}

	cursor, err := choiceCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var found []models.Choice
	if err = cursor.All(ctx, &found); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Choice, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	ordered := make([]models.Choice, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

// DeleteChoice ลบตัวเลือกได้ก็ต่อเมื่อไม่มี group ไหนถืออยู่
func DeleteChoice(ctx context.Context, id primitive.ObjectID) error {
	used, err := choiceGroupCollection.CountDocuments(ctx, bson.M{"choiceIds": id})
	if err != nil {
		return err
	}
	if used > 0 {
		return ErrChoiceInUse
	}

	res, err := choiceCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrChoiceNotFound
	}
	return nil
}

// CreateChoiceGroup สร้างชุดตัวเลือก (name ชน unique index ได้)
func CreateChoiceGroup(ctx context.Context, group *models.ChoiceGroup) error {
	if err := verifyChoicesExist(ctx, group.ChoiceIDs); err != nil {
		return err
	}

	res, err := choiceGroupCollection.InsertOne(ctx, group)
	if err != nil {
		return err
	}
	group.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetChoiceGroups คืนทุกชุดตัวเลือก
func GetChoiceGroups(ctx context.Context) ([]models.ChoiceGroup, error) {
	cursor, err := choiceGroupCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.ChoiceGroup
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetChoiceGroupByID คืนชุดตัวเลือกเดียว
func GetChoiceGroupByID(ctx context.Context, id primitive.ObjectID) (*models.ChoiceGroup, error) {
	var group models.ChoiceGroup
	err := choiceGroupCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChoiceGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// UpdateChoiceGroup แก้ชื่อ/สมาชิกของชุดตัวเลือก
func UpdateChoiceGroup(ctx context.Context, id primitive.ObjectID, name string, choiceIDs []primitive.ObjectID) (*models.ChoiceGroup, error) {
	if err := verifyChoicesExist(ctx, choiceIDs); err != nil {
		return nil, err
	}

	res, err := choiceGroupCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name, "choiceIds": choiceIDs}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrChoiceGroupNotFound
	}
	return GetChoiceGroupByID(ctx, id)
}

// DeleteChoiceGroup ปฏิเสธถ้ายังมี element อ้างอยู่ (ไม่ orphan เงียบ ๆ)
func DeleteChoiceGroup(ctx context.Context, id primitive.ObjectID) error {
	refs, err := formElementCollection.CountDocuments(ctx, bson.M{"choiceGroupId": id})
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrChoiceGroupInUse
	}

	res, err := choiceGroupCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrChoiceGroupNotFound
	}
	return nil
}

func verifyChoicesExist(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := choiceCollection.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return ErrChoiceNotFound
	}
	return nil
}
