package services

import (
	"database/sql"
	"sync/atomic"
	"time"

	"github.com/madflojo/tasks"
	"go.uber.org/zap"

	"github.com/2HgO/erino-go/types/responses"
)

// storePingInterval is how often the background task probes the database.
const storePingInterval = 30 * time.Second

type HealthService interface {
	Status() *responses.HealthResponse
}

// NewHealthService starts a scheduled store probe and reports process uptime
// plus the last observed store state. A waking frontend polls this endpoint,
// so the handler must never touch the database on the request path.
func NewHealthService(dataDatabase *sql.DB, scheduler *tasks.Scheduler, log *zap.Logger) HealthService {
	h := &healthService{
		service: service{dataDB: dataDatabase, log: log},
		started: time.Now(),
	}
	h.storeUp.Store(dataDatabase.Ping() == nil)

	_, err := scheduler.Add(&tasks.Task{
		Interval: storePingInterval,
		TaskFunc: func() error {
			err := h.dataDB.Ping()
			if err != nil {
				log.Warn("store ping failed", zap.Error(err))
			}
			h.storeUp.Store(err == nil)
			return nil
		},
	})
	if err != nil {
		log.Error("scheduling store ping", zap.Error(err))
	}

	return h
}

type healthService struct {
	service
	started time.Time
	storeUp atomic.Bool
}

func (h *healthService) Status() *responses.HealthResponse {
	status := "ok"
	if !h.storeUp.Load() {
		status = "degraded"
	}
	return &responses.HealthResponse{
		Status: status,
		Uptime: time.Since(h.started).Seconds(),
	}
}
