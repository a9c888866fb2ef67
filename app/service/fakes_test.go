package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/gateway"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
)

type fakeApplicationRepo struct {
	apps map[primitive.ObjectID]*model.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[primitive.ObjectID]*model.Application{}}
}

func (f *fakeApplicationRepo) Insert(_ context.Context, application *model.Application) (string, error) {
	application.ID = primitive.NewObjectID()
	clone := *application
	f.apps[application.ID] = &clone
	return application.ID.Hex(), nil
}

func (f *fakeApplicationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Application, error) {
	application, ok := f.apps[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *application
	return &clone, nil
}

func (f *fakeApplicationRepo) FindAll(_ context.Context, q model.ApplicationQuery) ([]model.Application, error) {
	out := []model.Application{}
	for _, application := range f.apps {
		if q.UserEmail != "" && application.UserEmail != q.UserEmail {
			continue
		}
		if q.Status != "" && application.ApplicationStatus != q.Status {
			continue
		}
		out = append(out, *application)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ApplicationDate.After(out[j].ApplicationDate)
	})
	return out, nil
}

func (f *fakeApplicationRepo) SetModeration(_ context.Context, id primitive.ObjectID, status, feedback string) (int64, error) {
	application, ok := f.apps[id]
	if !ok || application.ApplicationStatus != model.ApplicationPending {
		return 0, nil
	}
	application.ApplicationStatus = status
	application.Feedback = feedback
	return 1, nil
}

func (f *fakeApplicationRepo) Patch(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error) {
	application, ok := f.apps[id]
	if !ok {
		return 0, nil
	}
	for key, value := range fields {
		switch key {
		case "userName":
			application.UserName = value.(string)
		case "universityName":
			application.UniversityName = value.(string)
		case "scholarshipCategory":
			application.ScholarshipCategory = value.(string)
		case "degree":
			application.Degree = value.(string)
		case "applicationFees":
			application.ApplicationFees = value.(float64)
		case "serviceCharge":
			application.ServiceCharge = value.(float64)
		}
	}
	return 1, nil
}

func (f *fakeApplicationRepo) SetFeedback(_ context.Context, id primitive.ObjectID, feedback string) (int64, error) {
	application, ok := f.apps[id]
	if !ok {
		return 0, nil
	}
	application.Feedback = feedback
	return 1, nil
}

func (f *fakeApplicationRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.apps[id]; !ok {
		return 0, nil
	}
	delete(f.apps, id)
	return 1, nil
}

type fakeTrackingRepo struct {
	entries []model.TrackingLog
}

func (f *fakeTrackingRepo) Append(_ context.Context, trackingID, status string) error {
	f.entries = append(f.entries, model.TrackingLog{
		TrackingID: trackingID,
		Status:     status,
		Details:    strings.NewReplacer("_", " ", "-", " ").Replace(status),
		CreatedAt:  time.Now(),
	})
	return nil
}

func (f *fakeTrackingRepo) FindAll(_ context.Context) ([]model.TrackingLog, error) {
	out := make([]model.TrackingLog, len(f.entries))
	for i, entry := range f.entries {
		out[len(f.entries)-1-i] = entry
	}
	return out, nil
}

func (f *fakeTrackingRepo) FindByTrackingID(_ context.Context, trackingID string) ([]model.TrackingLog, error) {
	out := []model.TrackingLog{}
	for _, entry := range f.entries {
		if entry.TrackingID == trackingID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeTrackingRepo) has(trackingID, status string) bool {
	for _, entry := range f.entries {
		if entry.TrackingID == trackingID && entry.Status == status {
			return true
		}
	}
	return false
}

type fakePaymentRepo struct {
	apps        *fakeApplicationRepo
	payments    map[string]*model.Payment
	recordCalls int
}

func newFakePaymentRepo(apps *fakeApplicationRepo) *fakePaymentRepo {
	return &fakePaymentRepo{apps: apps, payments: map[string]*model.Payment{}}
}

func (f *fakePaymentRepo) FindByTransactionID(_ context.Context, transactionID string) (*model.Payment, error) {
	payment, ok := f.payments[transactionID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return payment, nil
}

func (f *fakePaymentRepo) RecordPayment(_ context.Context, applicationID primitive.ObjectID, payment *model.Payment) error {
	f.recordCalls++
	if application, ok := f.apps.apps[applicationID]; ok {
		application.PaymentStatus = model.PaymentPaid
		application.ApplicationStatus = model.ApplicationCompleted
	}
	f.payments[payment.TransactionID] = payment
	return nil
}

type fakeGateway struct {
	sessions map[string]*gateway.Session
	created  []gateway.CheckoutParams
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: map[string]*gateway.Session{}}
}

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, p gateway.CheckoutParams) (*gateway.CheckoutSession, error) {
	f.created = append(f.created, p)
	return &gateway.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.example.com/cs_test_1"}, nil
}

func (f *fakeGateway) RetrieveSession(_ context.Context, id string) (*gateway.Session, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, errors.New("no such session")
	}
	return session, nil
}

type fakeScholarshipRepo struct {
	items []model.Scholarship
}

func (f *fakeScholarshipRepo) Insert(_ context.Context, scholarship *model.Scholarship) (string, error) {
	scholarship.ID = primitive.NewObjectID()
	scholarship.ScholarshipPostDate = time.Now()
	f.items = append(f.items, *scholarship)
	return scholarship.ID.Hex(), nil
}

func (f *fakeScholarshipRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Scholarship, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			clone := f.items[i]
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeScholarshipRepo) FindAll(_ context.Context, q model.ScholarshipQuery) ([]model.Scholarship, int64, error) {
	out := []model.Scholarship{}
	for _, item := range f.items {
		if q.PostedUserEmail != "" && item.PostedUserEmail != q.PostedUserEmail {
			continue
		}
		if q.UniversityCountry != "" && item.UniversityCountry != q.UniversityCountry {
			continue
		}
		if q.Degree != "" && item.Degree != q.Degree {
			continue
		}
		if q.UniversityWorldRank > 0 && item.UniversityWorldRank > q.UniversityWorldRank {
			continue
		}
		if q.Search != "" {
			needle := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(item.ScholarshipName), needle) &&
				!strings.Contains(strings.ToLower(item.UniversityName), needle) {
				continue
			}
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScholarshipPostDate.After(out[j].ScholarshipPostDate)
	})
	total := int64(len(out))
	if q.Limit > 0 {
		skip := (q.Page - 1) * q.Limit
		if skip > len(out) {
			skip = len(out)
		}
		out = out[skip:]
		if len(out) > q.Limit {
			out = out[:q.Limit]
		}
	}
	return out, total, nil
}

func (f *fakeScholarshipRepo) FindCheapest(_ context.Context, limit int64) ([]model.Scholarship, error) {
	out := make([]model.Scholarship, len(f.items))
	copy(out, f.items)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScholarshipPostDate.Before(out[j].ScholarshipPostDate)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeScholarshipRepo) Patch(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			if name, ok := fields["scholarshipName"].(string); ok {
				f.items[i].ScholarshipName = name
			}
			if fees, ok := fields["applicationFees"].(float64); ok {
				f.items[i].ApplicationFees = fees
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeScholarshipRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeReviewRepo struct {
	reviews map[primitive.ObjectID]*model.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[primitive.ObjectID]*model.Review{}}
}

func (f *fakeReviewRepo) Insert(_ context.Context, review *model.Review) (string, error) {
	review.ID = primitive.NewObjectID()
	review.PostedAt = time.Now()
	clone := *review
	f.reviews[review.ID] = &clone
	return review.ID.Hex(), nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *review
	return &clone, nil
}

func (f *fakeReviewRepo) FindAll(_ context.Context, scholarshipID, email string) ([]model.Review, error) {
	out := []model.Review{}
	for _, review := range f.reviews {
		if scholarshipID != "" && review.ScholarshipID != scholarshipID {
			continue
		}
		if email != "" && review.UserEmail != email {
			continue
		}
		out = append(out, *review)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PostedAt.After(out[j].PostedAt)
	})
	return out, nil
}

func (f *fakeReviewRepo) Patch(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error) {
	review, ok := f.reviews[id]
	if !ok {
		return 0, nil
	}
	if text, ok := fields["reviewText"].(string); ok {
		review.ReviewText = text
	}
	if rating, ok := fields["rating"].(float64); ok {
		review.Rating = rating
	}
	review.PostedAt = time.Now()
	return 1, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.reviews[id]; !ok {
		return 0, nil
	}
	delete(f.reviews, id)
	return 1, nil
}

type fakeUserRepo struct {
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*model.User{}}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *model.User) (string, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	clone := *user
	f.byEmail[user.Email] = &clone
	return user.ID.Hex(), nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, q model.UserQuery) ([]model.User, error) {
	out := []model.User{}
	for _, user := range f.byEmail {
		if q.Email != "" && user.Email != q.Email {
			continue
		}
		if q.Role != "" && user.Role != q.Role {
			continue
		}
		out = append(out, *user)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id primitive.ObjectID, role string) (int64, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			user.Role = role
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	for email, user := range f.byEmail {
		if user.ID == id {
			delete(f.byEmail, email)
			return 1, nil
		}
	}
	return 0, nil
}
