package service

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/repo"
	"github.com/Rafi570/Scholarship-Management-System-server-2/helper"
)

type ReviewService struct {
	reviews repo.ReviewRepository
}

func NewReviewService(reviews repo.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// GET /review
func (s *ReviewService) List(c *fiber.Ctx) error {
	reviews, err := s.reviews.FindAll(c.Context(), c.Query("scholarshipId"), c.Query("email"))
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[[]model.Review]{Success: true, Data: reviews})
}

// GET /review/:id
func (s *ReviewService) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid review ID"})
	}

	review, err := s.reviews.FindByID(c.Context(), id)
	if err != nil {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "Review not found"})
	}

	return c.JSON(model.SuccessResponse[*model.Review]{Success: true, Data: review})
}

// POST /review
func (s *ReviewService) Create(c *fiber.Ctx) error {
	var req model.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	review := &model.Review{
		ScholarshipID:   req.ScholarshipID,
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		UserPhoto:       req.UserPhoto,
		UniversityName:  req.UniversityName,
		ScholarshipName: req.ScholarshipName,
		Rating:          req.Rating,
		ReviewText:      req.ReviewText,
	}

	id, err := s.reviews.Insert(c.Context(), review)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Failed to post review"})
	}

	return c.Status(201).JSON(model.SuccessResponse[string]{Success: true, Message: "Review posted successfully", Data: id})
}

// PATCH /review/:id
func (s *ReviewService) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid review ID"})
	}

	var req model.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}

	if req.ReviewText == "" && req.Rating == nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Nothing to update"})
	}

	fields := map[string]interface{}{}
	if req.ReviewText != "" {
		fields["reviewText"] = req.ReviewText
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}

	modified, err := s.reviews.Patch(c.Context(), id, fields)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Failed to update review"})
	}
	if modified == 0 {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "Review not found or no changes made"})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Review updated successfully"})
}

// DELETE /review/:id
func (s *ReviewService) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid review ID"})
	}

	deleted, err := s.reviews.Delete(c.Context(), id)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "Review not found"})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Review deleted"})
}
