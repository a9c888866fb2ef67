package service

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/repo"
)

type TrackingService struct {
	trackings repo.TrackingRepository
}

func NewTrackingService(trackings repo.TrackingRepository) *TrackingService {
	return &TrackingService{trackings: trackings}
}

// GET /tracking
func (s *TrackingService) List(c *fiber.Ctx) error {
	logs, err := s.trackings.FindAll(c.Context())
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[[]model.TrackingLog]{Success: true, Data: logs})
}

// GET /trackings/:trackingId
func (s *TrackingService) Get(c *fiber.Ctx) error {
	logs, err := s.trackings.FindByTrackingID(c.Context(), c.Params("trackingId"))
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if len(logs) == 0 {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "No tracking entries found"})
	}

	return c.JSON(model.SuccessResponse[[]model.TrackingLog]{Success: true, Data: logs})
}
