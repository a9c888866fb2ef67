package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *model.Review) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Review, error)
	FindAll(ctx context.Context, scholarshipID, email string) ([]model.Review, error)
	Patch(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type ReviewRepo struct {
	db *mongo.Database
}

func NewReviewRepo(db *mongo.Database) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) collection() *mongo.Collection {
	return r.db.Collection("review")
}

func (r *ReviewRepo) Insert(ctx context.Context, review *model.Review) (string, error) {
	review.PostedAt = time.Now()

	res, err := r.collection().InsertOne(ctx, review)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *ReviewRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Review, error) {
	var review model.Review
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepo) FindAll(ctx context.Context, scholarshipID, email string) ([]model.Review, error) {
	filter := bson.M{}
	if scholarshipID != "" {
		filter["scholarshipId"] = scholarshipID
	}
	if email != "" {
		filter["userEmail"] = email
	}

	opts := options.Find().SetSort(bson.D{{Key: "postedAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	reviews := []model.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepo) Patch(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error) {
	fields["postedAt"] = time.Now()

	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
