package handlers

import (
	"net/http"
	"strconv"

	"biblioteca-api/internal/apperrors"
	"biblioteca-api/internal/constants"
	"biblioteca-api/internal/models"
	"biblioteca-api/internal/service"
	"biblioteca-api/internal/utils"
)

type LoanHandler struct {
	Loans       *service.LoanService
	AuditLogger utils.Logger
}

func NewLoanHandler(loans *service.LoanService, logger utils.Logger) *LoanHandler {
	return &LoanHandler{Loans: loans, AuditLogger: logger}
}

// GET /api/prestamos
func (h *LoanHandler) GetLoans(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Loans.HydrateAll(h.Loans.ListAll()))
}

// GET /api/prestamos/{id}
func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	loan, err := h.Loans.FindByID(id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.Loans.Hydrate(loan))
}

// GET /api/prestamos/usuario/{usuarioId}
func (h *LoanHandler) GetLoansByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "usuarioId")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.Loans.HydrateAll(h.Loans.FindByUser(userID)))
}

// GET /api/prestamos/libro/{libroId}
func (h *LoanHandler) GetLoansByBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "libroId")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.Loans.HydrateAll(h.Loans.FindByBook(bookID)))
}

// GET /api/prestamos/fecha?fecha=YYYY-MM-DD
func (h *LoanHandler) GetLoansByDate(w http.ResponseWriter, r *http.Request) {
	date, err := models.ParseDate(r.URL.Query().Get("fecha"))
	if err != nil {
		utils.WriteError(w, r, apperrors.InvalidData(err.Error()))
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.Loans.HydrateAll(h.Loans.FindByLoanDate(date)))
}

// GET /api/prestamos/vencidos
func (h *LoanHandler) GetOverdueLoans(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Loans.HydrateAll(h.Loans.ListOverdue()))
}

// POST /api/prestamos?usuarioId=&libroId=&fechaDevolucion=YYYY-MM-DD
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID, err := strconv.ParseInt(query.Get("usuarioId"), 10, 64)
	if err != nil {
		utils.WriteError(w, r, apperrors.InvalidData("invalid usuarioId, expected a numeric id"))
		return
	}
	bookID, err := strconv.ParseInt(query.Get("libroId"), 10, 64)
	if err != nil {
		utils.WriteError(w, r, apperrors.InvalidData("invalid libroId, expected a numeric id"))
		return
	}
	var dueDate models.Date
	if raw := query.Get("fechaDevolucion"); raw != "" {
		dueDate, err = models.ParseDate(raw)
		if err != nil {
			utils.WriteError(w, r, apperrors.InvalidData(err.Error()))
			return
		}
	}
	loan, err := h.Loans.Create(userID, bookID, dueDate)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.LoanEntity, constants.CreateLoan, loan)
	utils.WriteJSON(w, http.StatusCreated, h.Loans.Hydrate(loan))
}

// PATCH /api/prestamos/{id}/devolver
func (h *LoanHandler) ReturnLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	loan, err := h.Loans.Return(id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.LoanEntity, constants.ReturnLoan, loan)
	utils.WriteJSON(w, http.StatusOK, h.Loans.Hydrate(loan))
}

// PATCH /api/prestamos/{id}/extender?nuevaFechaDevolucion=YYYY-MM-DD
func (h *LoanHandler) ExtendLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	raw := r.URL.Query().Get("nuevaFechaDevolucion")
	if raw == "" {
		utils.WriteError(w, r, apperrors.InvalidData("the new due date is required"))
		return
	}
	newDueDate, err := models.ParseDate(raw)
	if err != nil {
		utils.WriteError(w, r, apperrors.InvalidData(err.Error()))
		return
	}
	loan, err := h.Loans.Extend(id, newDueDate)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.LoanEntity, constants.ExtendLoan, loan)
	utils.WriteJSON(w, http.StatusOK, h.Loans.Hydrate(loan))
}

// DELETE /api/prestamos/{id}
func (h *LoanHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	if err := h.Loans.Delete(id); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.LoanEntity, constants.DeleteLoan, id)
	w.WriteHeader(http.StatusNoContent)
}
