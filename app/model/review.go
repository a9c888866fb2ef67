package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ScholarshipID   string             `bson:"scholarshipId" json:"scholarshipId"`
	UserName        string             `bson:"userName" json:"userName"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	UserPhoto       string             `bson:"userPhoto" json:"userPhoto"`
	UniversityName  string             `bson:"universityName" json:"universityName"`
	ScholarshipName string             `bson:"scholarshipName" json:"scholarshipName"`
	Rating          float64            `bson:"rating" json:"rating"`
	ReviewText      string             `bson:"reviewText" json:"reviewText"`
	PostedAt        time.Time          `bson:"postedAt" json:"postedAt"`
}

type CreateReviewRequest struct {
	ScholarshipID   string  `json:"scholarshipId" validate:"required"`
	UserName        string  `json:"userName" validate:"required"`
	UserEmail       string  `json:"userEmail" validate:"required,email"`
	UserPhoto       string  `json:"userPhoto"`
	UniversityName  string  `json:"universityName"`
	ScholarshipName string  `json:"scholarshipName"`
	Rating          float64 `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText      string  `json:"reviewText" validate:"required"`
}

type UpdateReviewRequest struct {
	ReviewText string   `json:"reviewText"`
	Rating     *float64 `json:"rating"`
}
