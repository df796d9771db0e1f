// Package store holds the in-memory state of the service: one map per
// entity kind guarded by its own RWMutex, plus a monotonic id counter that
// never hands out the same id twice, even after deletions.
package store

// Registry owns all process-level mutable state. It is created once at
// startup and shared by the services.
type Registry struct {
	Books *BookStore
	Users *UserStore
	Loans *LoanStore
	Audit *AuditStore
}

func NewRegistry() *Registry {
	return &Registry{
		Books: NewBookStore(),
		Users: NewUserStore(),
		Loans: NewLoanStore(),
		Audit: NewAuditStore(),
	}
}
