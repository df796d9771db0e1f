package utils

import (
	"log"
	"time"

	"biblioteca-api/internal/models"
)

func ExportData(logs []models.AuditLog) error {
	for _, entry := range logs {
		log.Printf("audit %s %s/%s request=%s", entry.Timestamp.Format(time.RFC3339), entry.Entity, entry.Action, entry.RequestID)
	}
	return nil
}
