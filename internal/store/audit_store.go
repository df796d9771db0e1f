package store

import (
	"sync"

	"biblioteca-api/internal/models"
)

// AuditStore collects audit entries until the exporter daemon flushes them.
type AuditStore struct {
	mu      sync.RWMutex
	entries map[int64]models.AuditLog
	nextID  int64
}

func NewAuditStore() *AuditStore {
	return &AuditStore{entries: make(map[int64]models.AuditLog), nextID: 1}
}

func (s *AuditStore) Append(entry models.AuditLog) models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextID
	s.nextID++
	s.entries[entry.ID] = entry
	return entry
}

func (s *AuditStore) UnexportedBatch() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch := []models.AuditLog{}
	for _, entry := range s.entries {
		if !entry.Exported {
			batch = append(batch, entry)
		}
	}
	return batch
}

func (s *AuditStore) MarkExported(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if entry, ok := s.entries[id]; ok {
			entry.Exported = true
			s.entries[id] = entry
		}
	}
}

func (s *AuditStore) All() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.AuditLog, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	return entries
}
