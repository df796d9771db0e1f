package store

import (
	"sync"

	"biblioteca-api/internal/models"
)

type LoanStore struct {
	mu     sync.RWMutex
	loans  map[int64]models.Loan
	nextID int64
}

func NewLoanStore() *LoanStore {
	return &LoanStore{loans: make(map[int64]models.Loan), nextID: 1}
}

func (s *LoanStore) Save(loan models.Loan) models.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	if loan.ID == 0 {
		loan.ID = s.nextID
		s.nextID++
	}
	s.loans[loan.ID] = loan
	return loan
}

func (s *LoanStore) FindByID(id int64) (models.Loan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loan, ok := s.loans[id]
	return loan, ok
}

func (s *LoanStore) FindAll() []models.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loans := make([]models.Loan, 0, len(s.loans))
	for _, loan := range s.loans {
		loans = append(loans, loan)
	}
	return loans
}

func (s *LoanStore) DeleteByID(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.loans, id)
}

func (s *LoanStore) ExistsByID(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.loans[id]
	return ok
}

func (s *LoanStore) FindByUser(userID int64) []models.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.Loan{}
	for _, loan := range s.loans {
		if loan.UserID == userID {
			matches = append(matches, loan)
		}
	}
	return matches
}

func (s *LoanStore) FindByBook(bookID int64) []models.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.Loan{}
	for _, loan := range s.loans {
		if loan.BookID == bookID {
			matches = append(matches, loan)
		}
	}
	return matches
}

func (s *LoanStore) FindByLoanDate(date models.Date) []models.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.Loan{}
	for _, loan := range s.loans {
		if loan.LoanDate.Equal(date) {
			matches = append(matches, loan)
		}
	}
	return matches
}

// FindActiveOverdueBefore returns the loans that have not been returned and
// whose due date is strictly before the given date.
func (s *LoanStore) FindActiveOverdueBefore(date models.Date) []models.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.Loan{}
	for _, loan := range s.loans {
		if loan.Active() && loan.DueDate.Before(date) {
			matches = append(matches, loan)
		}
	}
	return matches
}
