package handlers

import (
	"libraryhub/internal/core/services"
	"libraryhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// CreateLoanRequest represents create loan request
type CreateLoanRequest struct {
	UserID string `json:"user_id"`
	BookID string `json:"book_id"`
}

// Create creates a new loan
// @Summary Create loan
// @Description Check a book out to a user. The return date is computed from the user's category (STUDENT 10d, TEACHER 30d, LIBRARIAN 60d). Fails when the book already has an active loan.
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body CreateLoanRequest true "Loan data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans [post]
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var req CreateLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.UserID == "" {
		return response.BadRequest(c, "User ID is required")
	}
	if req.BookID == "" {
		return response.BadRequest(c, "Book ID is required")
	}

	input := &services.CreateLoanInput{
		UserID: req.UserID,
		BookID: req.BookID,
	}

	loan, err := h.loanService.Create(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "Loan created successfully", fiber.Map{
		"loan": newLoanResponse(loan),
	})
}

// List lists loans
// @Summary List loans
// @Description List all loans
// @Tags Loans
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	loans, err := h.loanService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Loans retrieved successfully", fiber.Map{
		"loans": newLoanResponses(loans),
	})
}

// GetByID gets a loan
// @Summary Get loan
// @Description Get a loan by ID
// @Tags Loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /loans/{id} [get]
func (h *LoanHandler) GetByID(c *fiber.Ctx) error {
	loan, err := h.loanService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Loan retrieved successfully", fiber.Map{
		"loan": newLoanResponse(loan),
	})
}

// ListByUser lists a user's loans
// @Summary List user loans
// @Description List all loans made by a user
// @Tags Loans
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id}/loans [get]
func (h *LoanHandler) ListByUser(c *fiber.Ctx) error {
	loans, err := h.loanService.ListByUser(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Loans retrieved successfully", fiber.Map{
		"loans": newLoanResponses(loans),
	})
}

// ListByBook lists a book's loans
// @Summary List book loans
// @Description List all loans taken on a book
// @Tags Loans
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /books/{id}/loans [get]
func (h *LoanHandler) ListByBook(c *fiber.Ctx) error {
	loans, err := h.loanService.ListByBook(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Loans retrieved successfully", fiber.Map{
		"loans": newLoanResponses(loans),
	})
}

// Return returns a loaned book
// @Summary Return loan
// @Description Mark an active loan as returned. Terminal loans are rejected.
// @Tags Loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans/{id}/return [put]
func (h *LoanHandler) Return(c *fiber.Ctx) error {
	loan, err := h.loanService.Return(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Loan returned successfully", fiber.Map{
		"loan": newLoanResponse(loan),
	})
}

// MarkOverdue marks a loan overdue
// @Summary Mark loan overdue
// @Description Mark an active loan as overdue. Terminal loans are rejected.
// @Tags Loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans/{id}/overdue [put]
func (h *LoanHandler) MarkOverdue(c *fiber.Ctx) error {
	loan, err := h.loanService.MarkOverdue(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Loan marked overdue", fiber.Map{
		"loan": newLoanResponse(loan),
	})
}
