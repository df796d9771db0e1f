package service

import (
	"sync"

	"biblioteca-api/internal/apperrors"
	"biblioteca-api/internal/models"
	"biblioteca-api/internal/store"
)

const defaultLoanDays = 15

// LoanService coordinates the loan lifecycle. It is the only component that
// mutates a loan together with its book, and all of its write paths run
// under a single mutex so the invariant "a PRESTADO book has exactly one
// active loan" holds across concurrent requests.
type LoanService struct {
	mu       sync.Mutex
	loans    *store.LoanStore
	books    *BookService
	users    *UserService
	loanDays int
}

func NewLoanService(loans *store.LoanStore, books *BookService, users *UserService, loanDays int) *LoanService {
	if loanDays <= 0 {
		loanDays = defaultLoanDays
	}
	return &LoanService{loans: loans, books: books, users: users, loanDays: loanDays}
}

func (s *LoanService) FindByID(id int64) (models.Loan, error) {
	loan, ok := s.loans.FindByID(id)
	if !ok {
		return models.Loan{}, apperrors.LoanNotFound(id)
	}
	return loan, nil
}

func (s *LoanService) ListAll() []models.Loan {
	return s.loans.FindAll()
}

func (s *LoanService) FindByUser(userID int64) []models.Loan {
	return s.loans.FindByUser(userID)
}

func (s *LoanService) FindByBook(bookID int64) []models.Loan {
	return s.loans.FindByBook(bookID)
}

func (s *LoanService) FindByLoanDate(date models.Date) []models.Loan {
	return s.loans.FindByLoanDate(date)
}

func (s *LoanService) ListOverdue() []models.Loan {
	return s.loans.FindActiveOverdueBefore(models.Today())
}

// HasActiveLoanForBook reports whether any loan of the book is still open.
func (s *LoanService) HasActiveLoanForBook(bookID int64) bool {
	for _, loan := range s.loans.FindByBook(bookID) {
		if loan.Active() {
			return true
		}
	}
	return false
}

func (s *LoanService) HasActiveLoanForUser(userID int64) bool {
	for _, loan := range s.loans.FindByUser(userID) {
		if loan.Active() {
			return true
		}
	}
	return false
}

// Create opens a loan for an active user on an available book. The book
// state check is the single choke point that keeps a book on at most one
// active loan. The loan is persisted before the book is flipped to PRESTADO;
// if the flip fails the loan is removed again so the book is never left
// phantom-loaned.
func (s *LoanService) Create(userID, bookID int64, dueDate models.Date) (models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.users.FindByID(userID)
	if err != nil {
		return models.Loan{}, err
	}
	book, err := s.books.FindByID(bookID)
	if err != nil {
		return models.Loan{}, err
	}
	if user.State != models.UserActive {
		return models.Loan{}, apperrors.ResourceUnavailable(models.UserEntity, "the user is not active")
	}
	if book.State != models.BookAvailable {
		return models.Loan{}, apperrors.ResourceUnavailable(models.BookEntity, "the book is not available")
	}

	today := models.Today()
	if dueDate.IsZero() {
		dueDate = today.AddDays(s.loanDays)
	} else if dueDate.Before(today) {
		return models.Loan{}, apperrors.InvalidData("the due date must not be before today")
	}

	loan := s.loans.Save(models.Loan{
		BookID:   book.ID,
		UserID:   user.ID,
		LoanDate: today,
		DueDate:  dueDate,
	})
	if _, err := s.books.ChangeState(book.ID, models.BookLoaned); err != nil {
		s.loans.DeleteByID(loan.ID)
		return models.Loan{}, err
	}
	return loan, nil
}

// Return closes the loan: the book becomes DISPONIBLE again and the actual
// return date is set to today. Returning a closed loan fails with 400.
func (s *LoanService) Return(id int64) (models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, err := s.FindByID(id)
	if err != nil {
		return models.Loan{}, err
	}
	if !loan.Active() {
		return models.Loan{}, apperrors.InvalidData("the loan was already returned")
	}
	if _, err := s.books.ChangeState(loan.BookID, models.BookAvailable); err != nil {
		return models.Loan{}, err
	}
	today := models.Today()
	loan.ActualReturn = &today
	return s.loans.Save(loan), nil
}

// Extend moves the due date of an active loan strictly forward.
func (s *LoanService) Extend(id int64, newDueDate models.Date) (models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, err := s.FindByID(id)
	if err != nil {
		return models.Loan{}, err
	}
	if !loan.Active() {
		return models.Loan{}, apperrors.InvalidData("the loan was already returned")
	}
	if newDueDate.IsZero() {
		return models.Loan{}, apperrors.InvalidData("the new due date is required")
	}
	if newDueDate.Before(models.Today()) {
		return models.Loan{}, apperrors.InvalidData("the new due date must not be before today")
	}
	if !newDueDate.After(loan.DueDate) {
		return models.Loan{}, apperrors.InvalidData("the new due date must be after the current due date")
	}
	loan.DueDate = newDueDate
	return s.loans.Save(loan), nil
}

// Delete removes the loan record. An active loan releases its book first,
// unless a direct state change already moved the book out of PRESTADO.
func (s *LoanService) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, err := s.FindByID(id)
	if err != nil {
		return err
	}
	if loan.Active() {
		if book, err := s.books.FindByID(loan.BookID); err == nil && book.State == models.BookLoaned {
			if _, err := s.books.ChangeState(book.ID, models.BookAvailable); err != nil {
				return err
			}
		}
	}
	s.loans.DeleteByID(loan.ID)
	return nil
}

// Hydrate joins the loan with the current book and user snapshots. A
// referent that no longer exists stays nil.
func (s *LoanService) Hydrate(loan models.Loan) models.LoanDetail {
	detail := models.LoanDetail{
		ID:           loan.ID,
		LoanDate:     loan.LoanDate,
		DueDate:      loan.DueDate,
		ActualReturn: loan.ActualReturn,
	}
	if book, err := s.books.FindByID(loan.BookID); err == nil {
		detail.Book = &book
	}
	if user, err := s.users.FindByID(loan.UserID); err == nil {
		detail.User = &user
	}
	return detail
}

func (s *LoanService) HydrateAll(loans []models.Loan) []models.LoanDetail {
	details := make([]models.LoanDetail, 0, len(loans))
	for _, loan := range loans {
		details = append(details, s.Hydrate(loan))
	}
	return details
}
