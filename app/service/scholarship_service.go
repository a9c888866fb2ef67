package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/repo"
	"github.com/Rafi570/Scholarship-Management-System-server-2/helper"
)

type ScholarshipService struct {
	scholarships repo.ScholarshipRepository
}

func NewScholarshipService(scholarships repo.ScholarshipRepository) *ScholarshipService {
	return &ScholarshipService{scholarships: scholarships}
}

// POST /scholarship
func (s *ScholarshipService) Create(c *fiber.Ctx) error {
	var req model.CreateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	scholarship := &model.Scholarship{
		ScholarshipName:     req.ScholarshipName,
		UniversityName:      req.UniversityName,
		UniversityCountry:   req.UniversityCountry,
		UniversityCity:      req.UniversityCity,
		UniversityWorldRank: req.UniversityWorldRank,
		UniversityImage:     req.UniversityImage,
		SubjectCategory:     req.SubjectCategory,
		ScholarshipCategory: req.ScholarshipCategory,
		Degree:              req.Degree,
		TuitionFees:         req.TuitionFees,
		ApplicationFees:     req.ApplicationFees,
		ServiceCharge:       req.ServiceCharge,
		PostedUserEmail:     req.PostedUserEmail,
	}

	id, err := s.scholarships.Insert(c.Context(), scholarship)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Failed to add scholarship"})
	}

	return c.Status(201).JSON(model.SuccessResponse[string]{Success: true, Message: "Scholarship added", Data: id})
}

// GET /scholarshipUniversity
func (s *ScholarshipService) List(c *fiber.Ctx) error {
	q := model.ScholarshipQuery{
		PostedUserEmail:     c.Query("email"),
		UniversityName:      c.Query("universityName"),
		UniversityCountry:   c.Query("universityCountry"),
		SubjectCategory:     c.Query("subjectCategory"),
		ScholarshipCategory: c.Query("scholarshipCategory"),
		Degree:              c.Query("degree"),
		UniversityWorldRank: c.QueryInt("universityWorldRank"),
		Search:              c.Query("search"),
		Page:                c.QueryInt("page", 1),
		Limit:               c.QueryInt("limit"),
	}
	if q.Page < 1 {
		q.Page = 1
	}

	scholarships, total, err := s.scholarships.FindAll(c.Context(), q)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	pages := 1
	if q.Limit > 0 {
		pages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}

	return c.JSON(model.SuccessResponse[model.PaginationData[model.Scholarship]]{
		Success: true,
		Data: model.PaginationData[model.Scholarship]{
			Items: scholarships,
			Meta:  model.MetaInfo{Page: q.Page, Limit: q.Limit, Total: total, Pages: pages},
		},
	})
}

// GET /scholarships/cheapest
func (s *ScholarshipService) Cheapest(c *fiber.Ctx) error {
	scholarships, err := s.scholarships.FindCheapest(c.Context(), 6)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[[]model.Scholarship]{Success: true, Data: scholarships})
}

// GET /scholarships/:id
func (s *ScholarshipService) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid scholarship ID"})
	}

	scholarship, err := s.scholarships.FindByID(c.Context(), id)
	if err != nil {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "Scholarship not found"})
	}

	return c.JSON(model.SuccessResponse[*model.Scholarship]{Success: true, Data: scholarship})
}

// PATCH /managesholarship/:id
func (s *ScholarshipService) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid scholarship ID"})
	}

	updates := map[string]interface{}{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}

	fields, err := model.FilterScholarshipPatch(updates)
	if err != nil {
		if errors.Is(err, model.ErrNothingToUpdate) {
			return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Nothing to update"})
		}
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: err.Error()})
	}

	matched, err := s.scholarships.Patch(c.Context(), id, fields)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error while updating scholarship"})
	}
	if matched == 0 {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "Scholarship not found"})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Scholarship updated successfully"})
}

// DELETE /managescholarshipdelete/:id
func (s *ScholarshipService) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid scholarship ID"})
	}

	deleted, err := s.scholarships.Delete(c.Context(), id)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "Scholarship not found"})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Scholarship deleted successfully"})
}
