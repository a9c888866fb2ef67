package model

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ApplicationPending   = "pending"
	ApplicationApproved  = "approved"
	ApplicationRejected  = "rejected"
	ApplicationCompleted = "completed"

	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"

	ActionApprove = "approved"
	ActionCancel  = "cancel"
)

var (
	ErrUnknownAction     = errors.New("unknown moderation action")
	ErrIllegalTransition = errors.New("application is not pending")
)

type Application struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ScholarshipID       string             `bson:"scholarshipId" json:"scholarshipId"`
	UserID              string             `bson:"userId" json:"userId"`
	UserName            string             `bson:"userName" json:"userName"`
	UserEmail           string             `bson:"userEmail" json:"userEmail"`
	UniversityName      string             `bson:"universityName" json:"universityName"`
	ScholarshipCategory string             `bson:"scholarshipCategory" json:"scholarshipCategory"`
	Degree              string             `bson:"degree" json:"degree"`
	ApplicationFees     float64            `bson:"applicationFees" json:"applicationFees"`
	ServiceCharge       float64            `bson:"serviceCharge" json:"serviceCharge"`
	ApplicationStatus   string             `bson:"applicationStatus" json:"applicationStatus"`
	PaymentStatus       string             `bson:"paymentStatus" json:"paymentStatus"`
	ApplicationDate     time.Time          `bson:"applicationDate" json:"applicationDate"`
	Feedback            string             `bson:"feedback" json:"feedback"`
	TrackingID          string             `bson:"trackingId" json:"trackingId"`
}

type CreateApplicationRequest struct {
	ScholarshipID       string  `json:"scholarshipId" validate:"required"`
	UserID              string  `json:"userId" validate:"required"`
	UserName            string  `json:"userName" validate:"required"`
	UserEmail           string  `json:"userEmail" validate:"required,email"`
	UniversityName      string  `json:"universityName" validate:"required"`
	ScholarshipCategory string  `json:"scholarshipCategory"`
	Degree              string  `json:"degree"`
	ApplicationFees     float64 `json:"applicationFees"`
	ServiceCharge       float64 `json:"serviceCharge"`
}

type ModerationRequest struct {
	Action     string `json:"action" validate:"required"`
	Feedback   string `json:"feedback"`
	TrackingID string `json:"trackingId"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

type ApplicationQuery struct {
	UserEmail string
	Status    string
}

// moderationTable is the transition table for moderation calls: only a
// pending application may be approved or rejected. Anything else is a
// conflict, not a silent overwrite.
var moderationTable = map[string]map[string]string{
	ApplicationPending: {
		ActionApprove: ApplicationApproved,
		ActionCancel:  ApplicationRejected,
	},
}

// NextApplicationStatus resolves the status a moderation action leads to.
// ErrUnknownAction is reported before ErrIllegalTransition so a bad request
// is never mistaken for a conflict.
func NextApplicationStatus(current, action string) (string, error) {
	if action != ActionApprove && action != ActionCancel {
		return "", ErrUnknownAction
	}
	next, ok := moderationTable[current][action]
	if !ok {
		return "", ErrIllegalTransition
	}
	return next, nil
}

// ModerationLogStatus is the tracking-log code recorded for an action.
func ModerationLogStatus(action string) string {
	if action == ActionCancel {
		return "apply-canceled"
	}
	return "apply-approved"
}
