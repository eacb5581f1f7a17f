package handlers

import (
	"errors"
	"time"

	"libraryhub/internal/core/domain"
	"libraryhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// respondError maps domain errors onto the HTTP error taxonomy:
// validation -> 400, missing references -> 404, business-rule
// conflicts -> 409, anything else -> 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidationError(err):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookNotFound),
		errors.Is(err, domain.ErrLoanNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrBookAlreadyLoaned),
		errors.Is(err, domain.ErrLoanNotActive):
		return response.Conflict(c, err.Error())
	default:
		return response.InternalServerError(c, "internal server error")
	}
}

// UserResponse DTO
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name.String(),
		City:      u.City,
		Category:  u.Category.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newUserResponses(users []*domain.User) []*UserResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = newUserResponse(u)
	}
	return out
}

// BookResponse DTO
type BookResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	Publisher string    `json:"publisher"`
	Classic   bool      `json:"classic"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBookResponse(b *domain.Book) *BookResponse {
	return &BookResponse{
		ID:        b.ID,
		Name:      b.Name,
		Year:      b.Year.Int(),
		Publisher: b.Publisher,
		Classic:   b.Year.IsClassic(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func newBookResponses(books []*domain.Book) []*BookResponse {
	out := make([]*BookResponse, len(books))
	for i, b := range books {
		out[i] = newBookResponse(b)
	}
	return out
}

// LoanResponse DTO
type LoanResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	BookID        string    `json:"book_id"`
	LoanDate      time.Time `json:"loan_date"`
	ReturnDate    time.Time `json:"return_date"`
	Status        string    `json:"status"`
	DaysRemaining int       `json:"days_remaining"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newLoanResponse(l *domain.Loan) *LoanResponse {
	return &LoanResponse{
		ID:            l.ID,
		UserID:        l.UserID,
		BookID:        l.BookID,
		LoanDate:      l.LoanDate,
		ReturnDate:    l.ReturnDate,
		Status:        string(l.Status),
		DaysRemaining: l.Period().DaysRemaining(time.Now()),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func newLoanResponses(loans []*domain.Loan) []*LoanResponse {
	out := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		out[i] = newLoanResponse(l)
	}
	return out
}
