package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Scholarship struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ScholarshipName     string             `bson:"scholarshipName" json:"scholarshipName"`
	UniversityName      string             `bson:"universityName" json:"universityName"`
	UniversityCountry   string             `bson:"universityCountry" json:"universityCountry"`
	UniversityCity      string             `bson:"universityCity,omitempty" json:"universityCity,omitempty"`
	UniversityWorldRank int                `bson:"universityWorldRank" json:"universityWorldRank"`
	UniversityImage     string             `bson:"universityImage,omitempty" json:"universityImage,omitempty"`
	SubjectCategory     string             `bson:"subjectCategory" json:"subjectCategory"`
	ScholarshipCategory string             `bson:"scholarshipCategory" json:"scholarshipCategory"`
	Degree              string             `bson:"degree" json:"degree"`
	TuitionFees         float64            `bson:"tuitionFees,omitempty" json:"tuitionFees,omitempty"`
	ApplicationFees     float64            `bson:"applicationFees" json:"applicationFees"`
	ServiceCharge       float64            `bson:"serviceCharge" json:"serviceCharge"`
	ScholarshipPostDate time.Time          `bson:"scholarshipPostDate" json:"scholarshipPostDate"`
	PostedUserEmail     string             `bson:"postedUserEmail" json:"postedUserEmail"`
}

type CreateScholarshipRequest struct {
	ScholarshipName     string  `json:"scholarshipName" validate:"required"`
	UniversityName      string  `json:"universityName" validate:"required"`
	UniversityCountry   string  `json:"universityCountry" validate:"required"`
	UniversityCity      string  `json:"universityCity"`
	UniversityWorldRank int     `json:"universityWorldRank"`
	UniversityImage     string  `json:"universityImage"`
	SubjectCategory     string  `json:"subjectCategory"`
	ScholarshipCategory string  `json:"scholarshipCategory"`
	Degree              string  `json:"degree" validate:"required"`
	TuitionFees         float64 `json:"tuitionFees"`
	ApplicationFees     float64 `json:"applicationFees" validate:"gte=0"`
	ServiceCharge       float64 `json:"serviceCharge" validate:"gte=0"`
	PostedUserEmail     string  `json:"postedUserEmail" validate:"required,email"`
}

type ScholarshipQuery struct {
	PostedUserEmail     string
	UniversityName      string
	UniversityCountry   string
	SubjectCategory     string
	ScholarshipCategory string
	Degree              string
	UniversityWorldRank int
	Search              string
	Page                int
	Limit               int
}
