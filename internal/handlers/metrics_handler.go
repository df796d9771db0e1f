package handlers

import (
	"net/http"

	"biblioteca-api/internal/models"
	"biblioteca-api/internal/service"
	"biblioteca-api/internal/utils"
)

type MetricsHandler struct {
	Books *service.BookService
	Users *service.UserService
	Loans *service.LoanService
}

// GET /admin/metrics
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	books := h.Books.ListAll()
	booksByState := map[string]int{}
	for _, book := range books {
		booksByState[string(book.State)]++
	}

	loans := h.Loans.ListAll()
	today := models.Today()
	var activeLoans, loansToday int
	for _, loan := range loans {
		if loan.Active() {
			activeLoans++
		}
		if loan.LoanDate.Equal(today) {
			loansToday++
		}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"total_books":    len(books),
		"books_by_state": booksByState,
		"active_users":   len(h.Users.ListByState(models.UserActive)),
		"total_loans":    len(loans),
		"active_loans":   activeLoans,
		"loans_today":    loansToday,
		"overdue_count":  len(h.Loans.ListOverdue()),
	})
}
