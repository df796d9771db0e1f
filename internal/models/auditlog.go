package models

import "time"

type AuditLog struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	RequestID string    `json:"request_id"`
	Data      any       `json:"data"`
	Exported  bool      `json:"exported"`
}
