package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"biblioteca-api/internal/apperrors"
	"biblioteca-api/internal/constants"
	"biblioteca-api/internal/models"
	"biblioteca-api/internal/service"
	"biblioteca-api/internal/utils"
)

type BookHandler struct {
	Books       *service.BookService
	Loans       *service.LoanService
	AuditLogger utils.Logger
}

func NewBookHandler(books *service.BookService, loans *service.LoanService, logger utils.Logger) *BookHandler {
	return &BookHandler{Books: books, Loans: loans, AuditLogger: logger}
}

// GET /api/books
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Books.ListAll())
}

// GET /api/books/{id}
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	book, err := h.Books.FindByID(id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, book)
}

// GET /api/books/isbn/{isbn}
func (h *BookHandler) GetBookByISBN(w http.ResponseWriter, r *http.Request) {
	book, err := h.Books.FindByISBN(mux.Vars(r)["isbn"])
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, book)
}

// GET /api/books/titulo/{titulo}
func (h *BookHandler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Books.SearchByTitle(mux.Vars(r)["titulo"]))
}

// GET /api/books/autor/{autor}
func (h *BookHandler) SearchByAuthor(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Books.SearchByAuthor(mux.Vars(r)["autor"]))
}

// GET /api/books/estado/{estado}
func (h *BookHandler) GetBooksByState(w http.ResponseWriter, r *http.Request) {
	state := mux.Vars(r)["estado"]
	if !models.IsValidBookState(state) {
		utils.WriteError(w, r, apperrors.InvalidData("invalid book state: "+state))
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.Books.ListByState(models.BookState(state)))
}

// POST /api/books
func (h *BookHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		utils.WriteError(w, r, apperrors.InvalidData("invalid JSON payload"))
		return
	}
	book.ID = 0
	created, err := h.Books.Create(book)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.BookEntity, constants.Create, created)
	utils.WriteJSON(w, http.StatusCreated, created)
}

// PUT /api/books/{id}
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		utils.WriteError(w, r, apperrors.InvalidData("invalid JSON payload"))
		return
	}
	updated, err := h.Books.Update(id, book)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.BookEntity, constants.Update, updated)
	utils.WriteJSON(w, http.StatusOK, updated)
}

// PATCH /api/books/{id}/estado?estado={estado}
func (h *BookHandler) ChangeBookState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	state := r.URL.Query().Get("estado")
	if !models.IsValidBookState(state) {
		utils.WriteError(w, r, apperrors.InvalidData("invalid book state: "+state))
		return
	}
	book, err := h.Books.ChangeState(id, models.BookState(state))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.BookEntity, constants.ChangeState, book)
	utils.WriteJSON(w, http.StatusOK, book)
}

// DELETE /api/books/{id}
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	if h.Loans.HasActiveLoanForBook(id) {
		utils.WriteError(w, r, apperrors.ResourceUnavailable(models.BookEntity, "the book has an active loan"))
		return
	}
	if err := h.Books.Delete(id); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.BookEntity, constants.Delete, id)
	w.WriteHeader(http.StatusNoContent)
}
