package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
)

type ApplicationRepository interface {
	Insert(ctx context.Context, application *model.Application) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Application, error)
	FindAll(ctx context.Context, q model.ApplicationQuery) ([]model.Application, error)
	SetModeration(ctx context.Context, id primitive.ObjectID, status, feedback string) (int64, error)
	Patch(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type ApplicationRepo struct {
	db *mongo.Database
}

func NewApplicationRepo(db *mongo.Database) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

func (r *ApplicationRepo) collection() *mongo.Collection {
	return r.db.Collection("applications")
}

func (r *ApplicationRepo) Insert(ctx context.Context, application *model.Application) (string, error) {
	res, err := r.collection().InsertOne(ctx, application)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *ApplicationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Application, error) {
	var application model.Application
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepo) FindAll(ctx context.Context, q model.ApplicationQuery) ([]model.Application, error) {
	filter := bson.M{}
	if q.UserEmail != "" {
		filter["userEmail"] = q.UserEmail
	}
	if q.Status != "" {
		filter["applicationStatus"] = q.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "applicationDate", Value: -1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	applications := []model.Application{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

// SetModeration applies an approve/reject outcome conditionally: the filter
// requires the application to still be pending, so a concurrent moderation
// call cannot overwrite an already decided application.
func (r *ApplicationRepo) SetModeration(ctx context.Context, id primitive.ObjectID, status, feedback string) (int64, error) {
	filter := bson.M{"_id": id, "applicationStatus": model.ApplicationPending}
	update := bson.M{"$set": bson.M{
		"applicationStatus": status,
		"feedback":          feedback,
	}}

	res, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *ApplicationRepo) Patch(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error) {
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *ApplicationRepo) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (int64, error) {
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"feedback": feedback}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *ApplicationRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
