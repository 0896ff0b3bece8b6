package users

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Backend-Uppass-Flows/src/database"
	"Backend-Uppass-Flows/src/models"
	"Backend-Uppass-Flows/src/services/flows"
)

var userCollection *mongo.Collection

var ErrUserNotFound = errors.New("user not found")

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	userCollection = database.GetCollection(database.DBName, "users")

	if userCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

// GetUserByID คืน user เดียว (ไม่รวม password)
func GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// DeleteUser ลบ user โดย set owner ของ flow เป็น null ก่อน (ไม่ cascade)
func DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := flows.SetFlowsOwnerNull(ctx, id); err != nil {
		return err
	}

	res, err := userCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
