package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rafi570/Scholarship-Management-System-server-2/config"
)

// Connect opens the MongoDB connection and returns the application database.
// The handle is passed down explicitly through route.SetupRoutes instead of
// living in a package global.
func Connect() *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.Env.MongoURI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	database := client.Database(config.Env.MongoDB)

	if err := ensureIndexes(ctx, database); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	log.Println("Connected to MongoDB successfully")
	return database
}

// ensureIndexes backs the invariants the handlers rely on: one account per
// email, one application per tracking id, and at most one payment record per
// provider transaction id. transactionId is sparse because plain tracking-log
// entries share the trackings collection with payment records.
func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection("user").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("applications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "trackingId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("trackings").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionId", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
	return err
}
