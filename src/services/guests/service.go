package guests

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Backend-Uppass-Flows/src/database"
	"Backend-Uppass-Flows/src/models"
)

var (
	guestCollection        *mongo.Collection
	valueElementCollection *mongo.Collection
)

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	guestCollection = database.GetCollection(database.DBName, "guests")
	valueElementCollection = database.GetCollection(database.DBName, "valueElements")

	if guestCollection == nil || valueElementCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

// ResolveGuest get-or-create ด้วย ip: เช็คอยู่ก่อนด้วย ip ดิบ (ไม่ใช่ token)
// แล้วค่อยให้ ApplyToken เติม token ตอนสร้าง
// insert ที่แข่งกันชน unique index ของ token แล้ว fallback ไป fetch ตัวที่ชนะ
func ResolveGuest(ctx context.Context, ip string) (*models.Guest, error) {
	var guest models.Guest
	err := guestCollection.FindOne(ctx, bson.M{"ip": ip}).Decode(&guest)
	if err == nil {
		return &guest, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	guest = models.Guest{IP: ip, CreatedAt: time.Now()}
	guest.ApplyToken()

	res, err := guestCollection.InsertOne(ctx, &guest)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			var winner models.Guest
			if ferr := guestCollection.FindOne(ctx, bson.M{"ip": ip}).Decode(&winner); ferr == nil {
				return &winner, nil
			}
		}
		return nil, err
	}

	guest.ID = res.InsertedID.(primitive.ObjectID)
	return &guest, nil
}

// GetGuestByToken คืน guest จาก token (dedup key)
func GetGuestByToken(ctx context.Context, token string) (*models.Guest, error) {
	var guest models.Guest
	err := guestCollection.FindOne(ctx, bson.M{"token": token}).Decode(&guest)
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// DeleteGuest ลบ guest โดยตัด reference จาก value ก่อน (set-null ไม่ cascade)
func DeleteGuest(ctx context.Context, id primitive.ObjectID) error {
	if _, err := valueElementCollection.UpdateMany(ctx,
		bson.M{"guestId": id},
		bson.M{"$unset": bson.M{"guestId": ""}},
	); err != nil {
		return err
	}

	_, err := guestCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
