package daemon

import (
	"time"

	"biblioteca-api/internal/store"
	"biblioteca-api/internal/utils"
)

type LogExporter struct {
	Audit    *store.AuditStore
	Interval time.Duration

	stop chan struct{}
	done chan struct{}
}

func (l *LogExporter) InitLogExporter() {
	interval := l.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	go func() {
		defer close(l.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			l.export()
			select {
			case <-ticker.C:
			case <-l.stop:
				// flush whatever arrived since the last tick
				l.export()
				return
			}
		}
	}()
}

// Stop signals the exporter goroutine and waits for its final flush.
func (l *LogExporter) Stop() {
	if l.stop == nil {
		return
	}
	close(l.stop)
	<-l.done
}

func (l *LogExporter) export() {
	logs := l.Audit.UnexportedBatch()
	if len(logs) == 0 {
		return
	}
	if err := utils.ExportData(logs); err != nil {
		return
	}
	ids := make([]int64, 0, len(logs))
	for _, entry := range logs {
		ids = append(ids, entry.ID)
	}
	l.Audit.MarkExported(ids)
}
