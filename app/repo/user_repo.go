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

type UserRepository interface {
	Insert(ctx context.Context, user *model.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context, q model.UserQuery) ([]model.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserRepo struct {
	db *mongo.Database
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) collection() *mongo.Collection {
	return r.db.Collection("user")
}

func (r *UserRepo) Insert(ctx context.Context, user *model.User) (string, error) {
	user.CreatedAt = time.Now()

	res, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindAll(ctx context.Context, q model.UserQuery) ([]model.User, error) {
	filter := bson.M{}
	if q.Email != "" {
		filter["email"] = q.Email
	}
	if q.Role != "" {
		filter["role"] = q.Role
	}
	if q.SearchText != "" {
		pattern := primitive.Regex{Pattern: q.SearchText, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error) {
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *UserRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
