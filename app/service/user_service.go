package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/repo"
	"github.com/Rafi570/Scholarship-Management-System-server-2/helper"
)

type UserService struct {
	users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users}
}

// POST /users
func (s *UserService) Register(c *fiber.Ctx) error {
	var req model.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	_, err := s.users.FindByEmail(c.Context(), req.Email)
	if err == nil {
		return c.JSON(model.SuccessMessageResponse{Success: false, Message: "user exists"})
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     model.RoleStudent,
	}
	id, err := s.users.Insert(c.Context(), user)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.Status(201).JSON(model.SuccessResponse[string]{Success: true, Message: "User registered", Data: id})
}

// GET /users
func (s *UserService) List(c *fiber.Ctx) error {
	q := model.UserQuery{
		Email:      c.Query("email"),
		Role:       c.Query("role"),
		SearchText: c.Query("searchText"),
	}

	users, err := s.users.FindAll(c.Context(), q)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.SuccessResponse[[]model.User]{Success: true, Data: users})
}

// PATCH /users/:id
func (s *UserService) UpdateRole(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid user ID"})
	}

	var req model.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid input"})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: helper.FormatValidationErrors(err)})
	}

	matched, err := s.users.UpdateRole(c.Context(), id, req.Role)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if matched == 0 {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "User not found"})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "User role updated successfully"})
}

// GET /users/:email/role
func (s *UserService) GetRole(c *fiber.Ctx) error {
	user, err := s.users.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.JSON(model.RoleResponse{Role: model.RoleStudent})
		}
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(model.RoleResponse{Role: user.Role})
}

// DELETE /users/:id
func (s *UserService) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(model.ErrorResponse{Success: false, Message: "Invalid user ID"})
	}

	deleted, err := s.users.Delete(c.Context(), id)
	if err != nil {
		return c.Status(500).JSON(model.ErrorResponse{Success: false, Message: "Server error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(model.ErrorResponse{Success: false, Message: "User not found"})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "User deleted"})
}
