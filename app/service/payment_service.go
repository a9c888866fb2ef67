package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/gateway"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/repo"
	"github.com/Rafi570/Scholarship-Management-System-server-2/helper"
)

type PaymentService struct {
	gateway    gateway.Payment
	payments   repo.PaymentRepository
	trackings  repo.TrackingRepository
	siteDomain string
}

func NewPaymentService(gw gateway.Payment, payments repo.PaymentRepository, trackings repo.TrackingRepository, siteDomain string) *PaymentService {
	return &PaymentService{
		gateway:    gw,
		payments:   payments,
		trackings:  trackings,
		siteDomain: siteDomain,
	}
}

// POST /payment-checkout-session
func (s *PaymentService) CreateCheckoutSession(c *fiber.Ctx) error {
	var req model.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	amount := (int64(req.ApplicationFees) + int64(req.ServiceCharge)) * 100

	// The metadata round-trip is the only mechanism tying the provider's
	// callback back to local records; embed every correlation key.
	session, err := s.gateway.CreateCheckoutSession(c.Context(), gateway.CheckoutParams{
		Item: gateway.CheckoutItem{
			Name:        "Payment for: " + req.ScholarshipName,
			Description: "University: " + req.UniversityName,
			AmountCents: amount,
			Currency:    "usd",
		},
		CustomerEmail: req.UserEmail,
		Metadata: map[string]string{
			"applicationId":   req.ApplicationID,
			"scholarshipId":   req.ScholarshipID,
			"scholarshipName": req.ScholarshipName,
			"universityName":  req.UniversityName,
			"postedUserEmail": req.PostedUserEmail,
			"userName":        req.UserName,
			"userEmail":       req.UserEmail,
			"degree":          req.Degree,
			"category":        req.ScholarshipCategory,
			"applicationFees": fmt.Sprintf("%.2f", req.ApplicationFees),
			"serviceCharge":   fmt.Sprintf("%.2f", req.ServiceCharge),
			"trackingId":      req.TrackingID,
		},
		SuccessURL: s.siteDomain + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.siteDomain + "/dashboard/payment-cancelled",
	})
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Checkout session failed", Error: err.Error()})
	}

	return c.JSON(model.CheckoutSessionResponse{URL: session.URL})
}

// PATCH /payment-success
//
// Driven by the client redirect, not a provider webhook, so it must be safe
// to call any number of times for the same session.
func (s *PaymentService) Success(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		var body struct {
			SessionID string `json:"sessionId"`
		}
		if err := c.BodyParser(&body); err == nil {
			sessionID = body.SessionID
		}
	}
	if sessionID == "" {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "session_id is required"})
	}

	session, err := s.gateway.RetrieveSession(c.Context(), sessionID)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Failed to retrieve checkout session"})
	}

	// Idempotency: a payment record for this transaction means the side
	// effects already ran.
	if _, err := s.payments.FindByTransactionID(c.Context(), session.TransactionID); err == nil {
		return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Payment already recorded"})
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	if session.PaymentStatus != gateway.SessionPaid {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Payment not completed"})
	}

	applicationID, err := primitive.ObjectIDFromHex(session.Metadata["applicationId"])
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Session metadata is missing the application ID"})
	}
	trackingID := session.Metadata["trackingId"]

	payment := &model.Payment{
		Amount:         float64(session.AmountTotal) / 100,
		Currency:       session.Currency,
		CustomerEmail:  session.CustomerEmail,
		ApplicationID:  session.Metadata["applicationId"],
		ScholarshipID:  session.Metadata["scholarshipId"],
		UniversityName: session.Metadata["universityName"],
		TransactionID:  session.TransactionID,
		Status:         model.PaymentPaid,
		PaidAt:         time.Now(),
		TrackingID:     trackingID,
	}

	if err := s.payments.RecordPayment(c.Context(), applicationID, payment); err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Failed to record payment"})
	}

	logTracking(c.Context(), s.trackings, trackingID, "payment_success")

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Payment recorded"})
}

// POST /payment-cancel
func (s *PaymentService) Cancel(c *fiber.Ctx) error {
	var req model.PaymentCancelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	logTracking(c.Context(), s.trackings, req.TrackingID, "payment-canceled")

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Payment cancellation logged"})
}
