package handlers

import (
	"libraryhub/internal/core/services"
	"libraryhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRequest represents register user request
type RegisterUserRequest struct {
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	Category string `json:"category"`
}

// Register registers a new user
// @Summary Register user
// @Description Register a new library user with a borrower category
// @Tags Users
// @Accept json
// @Produce json
// @Param body body RegisterUserRequest true "User data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.RegisterUserInput{
		Name:     req.Name,
		City:     req.City,
		Category: req.Category,
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "User registered successfully", fiber.Map{
		"user": newUserResponse(user),
	})
}

// List lists users
// @Summary List users
// @Description List all registered users
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Users retrieved successfully", fiber.Map{
		"users": newUserResponses(users),
	})
}

// GetByID gets a user
// @Summary Get user
// @Description Get a user by ID
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.userService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user": newUserResponse(user),
	})
}

// UpdateUserRequest represents update user request
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Category *string `json:"category"`
}

// Update updates a user
// @Summary Update user
// @Description Update a user's name, city or category
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateUserInput{
		Name:     req.Name,
		City:     req.City,
		Category: req.Category,
	}

	user, err := h.userService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "User updated successfully", fiber.Map{
		"user": newUserResponse(user),
	})
}

// Delete deletes a user
// @Summary Delete user
// @Description Delete a user by ID
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "User deleted successfully", nil)
}
