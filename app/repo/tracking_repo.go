package repo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
)

type TrackingRepository interface {
	Append(ctx context.Context, trackingID, status string) error
	FindAll(ctx context.Context) ([]model.TrackingLog, error)
	FindByTrackingID(ctx context.Context, trackingID string) ([]model.TrackingLog, error)
}

type TrackingRepo struct {
	db *mongo.Database
}

func NewTrackingRepo(db *mongo.Database) *TrackingRepo {
	return &TrackingRepo{db: db}
}

func (r *TrackingRepo) collection() *mongo.Collection {
	return r.db.Collection("trackings")
}

var detailsReplacer = strings.NewReplacer("_", " ", "-", " ")

// Append writes an immutable tracking-log entry. Entries are never updated
// or deleted; current state lives on the application record.
func (r *TrackingRepo) Append(ctx context.Context, trackingID, status string) error {
	entry := model.TrackingLog{
		TrackingID: trackingID,
		Status:     status,
		Details:    detailsReplacer.Replace(status),
		CreatedAt:  time.Now(),
	}
	_, err := r.collection().InsertOne(ctx, entry)
	return err
}

// logEntryFilter keeps payment records out of the listings; they share the
// collection but carry no details field.
func logEntryFilter(extra bson.M) bson.M {
	filter := bson.M{"details": bson.M{"$exists": true}}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

func (r *TrackingRepo) FindAll(ctx context.Context) ([]model.TrackingLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, logEntryFilter(nil), opts)
	if err != nil {
		return nil, err
	}

	logs := []model.TrackingLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *TrackingRepo) FindByTrackingID(ctx context.Context, trackingID string) ([]model.TrackingLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection().Find(ctx, logEntryFilter(bson.M{"trackingId": trackingID}), opts)
	if err != nil {
		return nil, err
	}

	logs := []model.TrackingLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
