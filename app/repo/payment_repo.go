package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
)

type PaymentRepository interface {
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error)
	RecordPayment(ctx context.Context, applicationID primitive.ObjectID, payment *model.Payment) error
}

type PaymentRepo struct {
	db *mongo.Database
}

func NewPaymentRepo(db *mongo.Database) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) FindByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.Collection("trackings").FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// RecordPayment marks the application paid/completed and inserts the payment
// record inside one store transaction, so a crash cannot leave the pair
// half-applied.
func (r *PaymentRepo) RecordPayment(ctx context.Context, applicationID primitive.ObjectID, payment *model.Payment) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		update := bson.M{"$set": bson.M{
			"paymentStatus":     model.PaymentPaid,
			"applicationStatus": model.ApplicationCompleted,
		}}
		if _, err := r.db.Collection("applications").UpdateOne(sc, bson.M{"_id": applicationID}, update); err != nil {
			return nil, err
		}
		if _, err := r.db.Collection("trackings").InsertOne(sc, payment); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}
