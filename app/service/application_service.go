package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/repo"
	"github.com/Rafi570/Scholarship-Management-System-server-2/helper"
)

type ApplicationService struct {
	applications repo.ApplicationRepository
	trackings    repo.TrackingRepository
}

func NewApplicationService(applications repo.ApplicationRepository, trackings repo.TrackingRepository) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		trackings:    trackings,
	}
}

// logTracking is best-effort: a failed log entry never fails the caller's
// request.
func logTracking(ctx context.Context, trackings repo.TrackingRepository, trackingID, status string) {
	if err := trackings.Append(ctx, trackingID, status); err != nil {
		log.Printf("tracking log %s %s failed: %v", trackingID, status, err)
	}
}

// POST /application
func (s *ApplicationService) Create(c *fiber.Ctx) error {
	var req model.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Missing required fields."})
	}

	application := &model.Application{
		ScholarshipID:       req.ScholarshipID,
		UserID:              req.UserID,
		UserName:            req.UserName,
		UserEmail:           req.UserEmail,
		UniversityName:      req.UniversityName,
		ScholarshipCategory: req.ScholarshipCategory,
		Degree:              req.Degree,
		ApplicationFees:     req.ApplicationFees,
		ServiceCharge:       req.ServiceCharge,
		ApplicationStatus:   model.ApplicationPending,
		PaymentStatus:       model.PaymentUnpaid,
		ApplicationDate:     time.Now(),
		TrackingID:          helper.GenerateTrackingID("APP"),
	}

	if _, err := s.applications.Insert(c.Context(), application); err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Failed to submit application."})
	}

	logTracking(c.Context(), s.trackings, application.TrackingID, "apply_created")

	return c.Status(201).JSON(model.ApplicationCreatedResponse{
		Success:    true,
		Message:    "Application submitted successfully.",
		TrackingID: application.TrackingID,
	})
}

// GET /application
func (s *ApplicationService) List(c *fiber.Ctx) error {
	q := model.ApplicationQuery{
		UserEmail: c.Query("email"),
		Status:    c.Query("status"),
	}

	applications, err := s.applications.FindAll(c.Context(), q)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error."})
	}

	return c.JSON(model.SuccessResponse[[]model.Application]{Success: true, Data: applications})
}

// GET /application/:id
func (s *ApplicationService) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid application ID."})
	}

	application, err := s.applications.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "Application not found."})
		}
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error."})
	}

	return c.JSON(model.SuccessResponse[*model.Application]{Success: true, Data: application})
}

// PATCH /rolemoderator/:id
func (s *ApplicationService) Moderate(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid application ID."})
	}

	var req model.ModerationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}

	application, err := s.applications.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "Application not found."})
		}
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Update failed"})
	}

	status, err := model.NextApplicationStatus(application.ApplicationStatus, req.Action)
	if err != nil {
		if errors.Is(err, model.ErrUnknownAction) {
			return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: err.Error()})
		}
		return c.Status(409).JSON(model.ErrorResponse{Success: false, Message: err.Error()})
	}

	// The repo re-checks the pending state in its update filter, so a racing
	// moderation call surfaces here as matched == 0.
	matched, err := s.applications.SetModeration(c.Context(), id, status, req.Feedback)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Update failed"})
	}
	if matched == 0 {
		return c.Status(409).JSON(model.ErrorResponse{Success: false, Message: model.ErrIllegalTransition.Error()})
	}

	logTracking(c.Context(), s.trackings, application.TrackingID, model.ModerationLogStatus(req.Action))

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Application updated successfully"})
}

// PATCH /application/:id
func (s *ApplicationService) Patch(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid application ID"})
	}

	updates := map[string]interface{}{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}

	fields, err := model.FilterApplicationPatch(updates)
	if err != nil {
		if errors.Is(err, model.ErrNothingToUpdate) {
			return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Nothing to update"})
		}
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: err.Error()})
	}

	modified, err := s.applications.Patch(c.Context(), id, fields)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if modified == 0 {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "No update applied"})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Application updated"})
}

// PATCH /application/feedback/:id
func (s *ApplicationService) UpdateFeedback(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid application ID"})
	}

	var req model.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	modified, err := s.applications.SetFeedback(c.Context(), id, req.Feedback)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if modified == 0 {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "Application not found or no changes made"})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Feedback saved"})
}

// DELETE /application/:id
func (s *ApplicationService) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid application ID"})
	}

	deleted, err := s.applications.Delete(c.Context(), id)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "Application not found"})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Application deleted successfully"})
}
