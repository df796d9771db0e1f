package handlers_test

import (
	"github.com/gorilla/mux"

	"biblioteca-api/internal/handlers"
	"biblioteca-api/internal/service"
	"biblioteca-api/internal/store"
	"biblioteca-api/internal/utils"
)

type testEnv struct {
	router *mux.Router
	reg    *store.Registry
	books  *service.BookService
	users  *service.UserService
	loans  *service.LoanService
}

// newTestEnv wires the full route table the way cmd/main.go does.
func newTestEnv() *testEnv {
	reg := store.NewRegistry()
	books := service.NewBookService(reg.Books)
	users := service.NewUserService(reg.Users)
	loans := service.NewLoanService(reg.Loans, books, users, 15)
	logger := utils.Logger{Store: reg.Audit}

	r := mux.NewRouter()

	bookHandler := handlers.NewBookHandler(books, loans, logger)
	booksRouter := r.PathPrefix("/api/books").Subrouter()
	booksRouter.HandleFunc("", bookHandler.GetBooks).Methods("GET")
	booksRouter.HandleFunc("", bookHandler.AddBook).Methods("POST")
	booksRouter.HandleFunc("/isbn/{isbn}", bookHandler.GetBookByISBN).Methods("GET")
	booksRouter.HandleFunc("/titulo/{titulo}", bookHandler.SearchByTitle).Methods("GET")
	booksRouter.HandleFunc("/autor/{autor}", bookHandler.SearchByAuthor).Methods("GET")
	booksRouter.HandleFunc("/estado/{estado}", bookHandler.GetBooksByState).Methods("GET")
	booksRouter.HandleFunc("/{id}", bookHandler.GetBook).Methods("GET")
	booksRouter.HandleFunc("/{id}", bookHandler.UpdateBook).Methods("PUT")
	booksRouter.HandleFunc("/{id}/estado", bookHandler.ChangeBookState).Methods("PATCH")
	booksRouter.HandleFunc("/{id}", bookHandler.DeleteBook).Methods("DELETE")

	userHandler := handlers.NewUserHandler(users, loans, logger)
	usersRouter := r.PathPrefix("/api/usuarios").Subrouter()
	usersRouter.HandleFunc("", userHandler.GetUsers).Methods("GET")
	usersRouter.HandleFunc("", userHandler.RegisterUser).Methods("POST")
	usersRouter.HandleFunc("/email/{email}", userHandler.GetUserByEmail).Methods("GET")
	usersRouter.HandleFunc("/nombre/{nombre}", userHandler.SearchByName).Methods("GET")
	usersRouter.HandleFunc("/estado/{estado}", userHandler.GetUsersByState).Methods("GET")
	usersRouter.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")
	usersRouter.HandleFunc("/{id}", userHandler.UpdateUser).Methods("PUT")
	usersRouter.HandleFunc("/{id}/estado", userHandler.ChangeUserState).Methods("PATCH")
	usersRouter.HandleFunc("/{id}", userHandler.DeleteUser).Methods("DELETE")

	loanHandler := handlers.NewLoanHandler(loans, logger)
	loansRouter := r.PathPrefix("/api/prestamos").Subrouter()
	loansRouter.HandleFunc("", loanHandler.GetLoans).Methods("GET")
	loansRouter.HandleFunc("", loanHandler.CreateLoan).Methods("POST")
	loansRouter.HandleFunc("/usuario/{usuarioId}", loanHandler.GetLoansByUser).Methods("GET")
	loansRouter.HandleFunc("/libro/{libroId}", loanHandler.GetLoansByBook).Methods("GET")
	loansRouter.HandleFunc("/fecha", loanHandler.GetLoansByDate).Methods("GET")
	loansRouter.HandleFunc("/vencidos", loanHandler.GetOverdueLoans).Methods("GET")
	loansRouter.HandleFunc("/{id}", loanHandler.GetLoan).Methods("GET")
	loansRouter.HandleFunc("/{id}/devolver", loanHandler.ReturnLoan).Methods("PATCH")
	loansRouter.HandleFunc("/{id}/extender", loanHandler.ExtendLoan).Methods("PATCH")
	loansRouter.HandleFunc("/{id}", loanHandler.DeleteLoan).Methods("DELETE")

	metricsHandler := handlers.MetricsHandler{Books: books, Users: users, Loans: loans}
	r.HandleFunc("/admin/metrics", metricsHandler.GetMetrics).Methods("GET")

	return &testEnv{router: r, reg: reg, books: books, users: users, loans: loans}
}
