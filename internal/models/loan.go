package models

const LoanEntity = "prestamo"

// Loan references its book and user by id; the joined projection lives in
// LoanDetail.
type Loan struct {
	ID           int64 `json:"id"`
	BookID       int64 `json:"libroId"`
	UserID       int64 `json:"usuarioId"`
	LoanDate     Date  `json:"fechaPrestamo"`
	DueDate      Date  `json:"fechaDevolucion"`
	ActualReturn *Date `json:"fechaDevolucionReal,omitempty"`
}

// Active reports whether the loan has not been returned yet.
func (l Loan) Active() bool {
	return l.ActualReturn == nil
}

// OverdueAt reports whether the loan is active and its due date has passed.
func (l Loan) OverdueAt(today Date) bool {
	return l.Active() && l.DueDate.Before(today)
}

// Equal defines loan identity by id alone.
func (l Loan) Equal(other Loan) bool {
	return l.ID == other.ID
}

// LoanDetail is the wire shape of a loan, joining the current book and user
// snapshots. A referent deleted after the loan closed serializes as null.
type LoanDetail struct {
	ID           int64 `json:"id"`
	Book         *Book `json:"libro"`
	User         *User `json:"usuario"`
	LoanDate     Date  `json:"fechaPrestamo"`
	DueDate      Date  `json:"fechaDevolucion"`
	ActualReturn *Date `json:"fechaDevolucionReal,omitempty"`
}
