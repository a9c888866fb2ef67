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

type ScholarshipRepository interface {
	Insert(ctx context.Context, scholarship *model.Scholarship) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Scholarship, error)
	FindAll(ctx context.Context, q model.ScholarshipQuery) ([]model.Scholarship, int64, error)
	FindCheapest(ctx context.Context, limit int64) ([]model.Scholarship, error)
	Patch(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type ScholarshipRepo struct {
	db *mongo.Database
}

func NewScholarshipRepo(db *mongo.Database) *ScholarshipRepo {
	return &ScholarshipRepo{db: db}
}

func (r *ScholarshipRepo) collection() *mongo.Collection {
	return r.db.Collection("university")
}

func (r *ScholarshipRepo) Insert(ctx context.Context, scholarship *model.Scholarship) (string, error) {
	scholarship.ScholarshipPostDate = time.Now()

	res, err := r.collection().InsertOne(ctx, scholarship)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *ScholarshipRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Scholarship, error) {
	var scholarship model.Scholarship
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&scholarship); err != nil {
		return nil, err
	}
	return &scholarship, nil
}

func (r *ScholarshipRepo) FindAll(ctx context.Context, q model.ScholarshipQuery) ([]model.Scholarship, int64, error) {
	filter := bson.M{}
	if q.PostedUserEmail != "" {
		filter["postedUserEmail"] = q.PostedUserEmail
	}
	if q.UniversityName != "" {
		filter["universityName"] = q.UniversityName
	}
	if q.UniversityCountry != "" {
		filter["universityCountry"] = q.UniversityCountry
	}
	if q.SubjectCategory != "" {
		filter["subjectCategory"] = q.SubjectCategory
	}
	if q.ScholarshipCategory != "" {
		filter["scholarshipCategory"] = q.ScholarshipCategory
	}
	if q.Degree != "" {
		filter["degree"] = q.Degree
	}
	if q.UniversityWorldRank > 0 {
		filter["universityWorldRank"] = bson.M{"$lte": q.UniversityWorldRank}
	}
	if q.Search != "" {
		pattern := primitive.Regex{Pattern: q.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"scholarshipName": pattern},
			bson.M{"universityName": pattern},
		}
	}

	total, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "scholarshipPostDate", Value: -1}})
	if q.Limit > 0 {
		opts.SetSkip(int64((q.Page - 1) * q.Limit)).SetLimit(int64(q.Limit))
	}

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	scholarships := []model.Scholarship{}
	if err := cursor.All(ctx, &scholarships); err != nil {
		return nil, 0, err
	}
	return scholarships, total, nil
}

func (r *ScholarshipRepo) FindCheapest(ctx context.Context, limit int64) ([]model.Scholarship, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "scholarshipPostDate", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	scholarships := []model.Scholarship{}
	if err := cursor.All(ctx, &scholarships); err != nil {
		return nil, err
	}
	return scholarships, nil
}

func (r *ScholarshipRepo) Patch(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error) {
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *ScholarshipRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
