package handlers

import (
	"libraryhub/internal/core/services"
	"libraryhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BookHandler handles book endpoints
type BookHandler struct {
	bookService *services.BookService
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService *services.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// RegisterBookRequest represents register book request
type RegisterBookRequest struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Publisher string `json:"publisher"`
}

// Register registers a new book
// @Summary Register book
// @Description Add a new book to the catalog
// @Tags Books
// @Accept json
// @Produce json
// @Param body body RegisterBookRequest true "Book data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /books [post]
func (h *BookHandler) Register(c *fiber.Ctx) error {
	var req RegisterBookRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.RegisterBookInput{
		Name:      req.Name,
		Year:      req.Year,
		Publisher: req.Publisher,
	}

	book, err := h.bookService.Register(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "Book registered successfully", fiber.Map{
		"book": newBookResponse(book),
	})
}

// List lists books
// @Summary List books
// @Description List the whole catalog
// @Tags Books
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /books [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	books, err := h.bookService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Books retrieved successfully", fiber.Map{
		"books": newBookResponses(books),
	})
}

// Search searches books by name
// @Summary Search books
// @Description Case-insensitive substring search on book name. An empty term returns every book.
// @Tags Books
// @Accept json
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} response.Response
// @Router /books/search [get]
func (h *BookHandler) Search(c *fiber.Ctx) error {
	books, err := h.bookService.Search(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Books retrieved successfully", fiber.Map{
		"books": newBookResponses(books),
	})
}

// GetByID gets a book
// @Summary Get book
// @Description Get a book by ID
// @Tags Books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /books/{id} [get]
func (h *BookHandler) GetByID(c *fiber.Ctx) error {
	book, err := h.bookService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Book retrieved successfully", fiber.Map{
		"book": newBookResponse(book),
	})
}

// UpdateBookRequest represents update book request
type UpdateBookRequest struct {
	Name      *string `json:"name"`
	Year      *int    `json:"year"`
	Publisher *string `json:"publisher"`
}

// Update updates a book
// @Summary Update book
// @Description Update a book's name, year or publisher
// @Tags Books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param body body UpdateBookRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /books/{id} [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	var req UpdateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateBookInput{
		Name:      req.Name,
		Year:      req.Year,
		Publisher: req.Publisher,
	}

	book, err := h.bookService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Book updated successfully", fiber.Map{
		"book": newBookResponse(book),
	})
}

// Delete deletes a book
// @Summary Delete book
// @Description Delete a book by ID
// @Tags Books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	if err := h.bookService.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Book deleted successfully", nil)
}
