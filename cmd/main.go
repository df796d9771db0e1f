package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"biblioteca-api/configs"
	"biblioteca-api/internal/daemon"
	"biblioteca-api/internal/handlers"
	"biblioteca-api/internal/middleware"
	"biblioteca-api/internal/service"
	"biblioteca-api/internal/store"
	"biblioteca-api/internal/utils"
)

func main() {
	cfg := configs.LoadConfig()

	reg := store.NewRegistry()
	bookService := service.NewBookService(reg.Books)
	userService := service.NewUserService(reg.Users)
	loanService := service.NewLoanService(reg.Loans, bookService, userService, cfg.LoanDays)

	auditLogger := utils.Logger{Store: reg.Audit}

	exporter := daemon.LogExporter{
		Audit:    reg.Audit,
		Interval: time.Duration(cfg.AuditExportInterval) * time.Second,
	}
	exporter.InitLogExporter()

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.JSONMiddleware)
	r.Use(middleware.Recover)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	})

	bookHandler := handlers.NewBookHandler(bookService, loanService, auditLogger)

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

	userHandler := handlers.NewUserHandler(userService, loanService, auditLogger)

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

	loanHandler := handlers.NewLoanHandler(loanService, auditLogger)

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

	metricsHandler := handlers.MetricsHandler{
		Books: bookService,
		Users: userService,
		Loans: loanService,
	}
	r.HandleFunc("/admin/metrics", metricsHandler.GetMetrics).Methods("GET")

	var server = http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("Server starting on port", cfg.Port)
		log.Fatal(server.ListenAndServe())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	exporter.Stop()
	log.Println("Server shut down.")
}
