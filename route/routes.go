package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/gateway"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/repo"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/service"
	"github.com/Rafi570/Scholarship-Management-System-server-2/middleware"
)

func SetupRoutes(app *fiber.App, db *mongo.Database, verifier middleware.TokenVerifier, pay gateway.Payment, siteDomain string) {
	userRepo := repo.NewUserRepo(db)
	scholarshipRepo := repo.NewScholarshipRepo(db)
	reviewRepo := repo.NewReviewRepo(db)
	applicationRepo := repo.NewApplicationRepo(db)
	trackingRepo := repo.NewTrackingRepo(db)
	paymentRepo := repo.NewPaymentRepo(db)

	users := service.NewUserService(userRepo)
	scholarships := service.NewScholarshipService(scholarshipRepo)
	reviews := service.NewReviewService(reviewRepo)
	applications := service.NewApplicationService(applicationRepo, trackingRepo)
	payments := service.NewPaymentService(pay, paymentRepo, trackingRepo, siteDomain)
	trackings := service.NewTrackingService(trackingRepo)

	authed := middleware.AuthRequired(verifier)
	adminOnly := middleware.RoleRequired(userRepo, model.RoleAdmin)
	moderatorOnly := middleware.RoleRequired(userRepo, model.RoleModerator)

	app.Post("/users", users.Register)
	app.Get("/users", authed, adminOnly, users.List)
	app.Get("/users/:email/role", users.GetRole)
	app.Patch("/users/:id", authed, adminOnly, users.UpdateRole)
	app.Delete("/users/:id", authed, adminOnly, users.Delete)

	app.Get("/scholarships/cheapest", scholarships.Cheapest)
	app.Get("/scholarshipUniversity", scholarships.List)
	app.Get("/scholarships/:id", scholarships.Get)
	app.Post("/scholarship", scholarships.Create)
	app.Patch("/managesholarship/:id", scholarships.Update)
	app.Delete("/managescholarshipdelete/:id", scholarships.Delete)

	app.Get("/review", authed, reviews.List)
	app.Get("/review/:id", reviews.Get)
	app.Post("/review", reviews.Create)
	app.Patch("/review/:id", reviews.Update)
	app.Delete("/review/:id", reviews.Delete)

	app.Post("/application", applications.Create)
	app.Get("/application", applications.List)
	app.Get("/application/:id", authed, applications.Get)
	app.Patch("/application/feedback/:id", applications.UpdateFeedback)
	app.Patch("/application/:id", applications.Patch)
	app.Delete("/application/:id", applications.Delete)
	app.Patch("/rolemoderator/:id", authed, moderatorOnly, applications.Moderate)

	app.Post("/payment-checkout-session", payments.CreateCheckoutSession)
	app.Patch("/payment-success", payments.Success)
	app.Post("/payment-cancel", payments.Cancel)

	app.Get("/tracking", trackings.List)
	app.Get("/trackings/:trackingId", trackings.Get)
}
