package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrackingLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TrackingID string             `bson:"trackingId" json:"trackingId"`
	Status     string             `bson:"status" json:"status"`
	Details    string             `bson:"details" json:"details"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// Payment records live in the trackings collection alongside the log
// entries, keyed by the same tracking id. The unique sparse index on
// transactionId guarantees at most one record per provider transaction.
type Payment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Amount         float64            `bson:"amount" json:"amount"`
	Currency       string             `bson:"currency" json:"currency"`
	CustomerEmail  string             `bson:"customerEmail" json:"customerEmail"`
	ApplicationID  string             `bson:"applicationId" json:"applicationId"`
	ScholarshipID  string             `bson:"scholarshipId" json:"scholarshipId"`
	UniversityName string             `bson:"universityName" json:"universityName"`
	TransactionID  string             `bson:"transactionId" json:"transactionId"`
	Status         string             `bson:"status" json:"status"`
	PaidAt         time.Time          `bson:"paidAt" json:"paidAt"`
	TrackingID     string             `bson:"trackingId" json:"trackingId"`
}

type CheckoutRequest struct {
	ApplicationID       string  `json:"_id" validate:"required"`
	ScholarshipID       string  `json:"scholarshipId"`
	ScholarshipName     string  `json:"scholarshipName" validate:"required"`
	UniversityName      string  `json:"universityName" validate:"required"`
	PostedUserEmail     string  `json:"postedUserEmail"`
	UserName            string  `json:"userName"`
	UserEmail           string  `json:"userEmail" validate:"required,email"`
	Degree              string  `json:"degree"`
	ScholarshipCategory string  `json:"scholarshipCategory"`
	ApplicationFees     float64 `json:"applicationFees"`
	ServiceCharge       float64 `json:"serviceCharge"`
	TrackingID          string  `json:"trackingId" validate:"required"`
}

type PaymentCancelRequest struct {
	TrackingID string `json:"trackingId" validate:"required"`
}
