package flows

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-Uppass-Flows/src/models"
)

func getFormGroups(ctx context.Context, flowID primitive.ObjectID) ([]models.FormGroup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cursor, err := formGroupCollection.Find(ctx, bson.M{"flowId": flowID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.FormGroup
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func getFormElements(ctx context.Context, groupID primitive.ObjectID) ([]models.FormElement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cursor, err := formElementCollection.Find(ctx, bson.M{"formGroupId": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var elements []models.FormElement
	if err = cursor.All(ctx, &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// nextDisplayOrder หา ordinal ถัดไปใน scope ของ parent (max + 1)
func nextDisplayOrder(ctx context.Context, coll *mongo.Collection, filter bson.M) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "displayOrder", Value: -1}})

	var last struct {
		DisplayOrder int `bson:"displayOrder"`
	}
	err := coll.FindOne(ctx, filter, opts).Decode(&last)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 1, nil
		}
		return 0, err
	}
	return last.DisplayOrder + 1, nil
}

func collectIDs(ctx context.Context, coll *mongo.Collection, filter bson.M) ([]primitive.ObjectID, error) {
	cursor, err := coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
