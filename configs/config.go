package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	LoanDays            int
	AuditExportInterval int // seconds
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var loanDays int
	fmt.Sscanf(os.Getenv("LOAN_DAYS"), "%d", &loanDays)
	if loanDays <= 0 {
		loanDays = 15
	}

	var exportInterval int
	fmt.Sscanf(os.Getenv("AUDIT_EXPORT_INTERVAL_SECONDS"), "%d", &exportInterval)
	if exportInterval <= 0 {
		exportInterval = 30
	}

	return Config{
		Port:                port,
		LoanDays:            loanDays,
		AuditExportInterval: exportInterval,
	}
}
