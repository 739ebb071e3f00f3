package health

import (
	"context"
	"runtime"
	"time"

	"focusquote-backend/internal/cache"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

type HealthChecker struct {
	db *pgxpool.Pool
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

// DetailedStatus adds cache state and host resource usage for dashboards
type DetailedStatus struct {
	HealthStatus
	Redis      string  `json:"redis"`
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float64 `json:"mem_percent"`
	MemUsedMB  uint64  `json:"mem_used_mb"`
	Goroutines int     `json:"goroutines"`
}

func NewHealthChecker(db *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	dbHealth := h.checkDatabase()

	status := "healthy"
	if dbHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:   status,
		Database: dbHealth,
	}
}

func (h *HealthChecker) CheckDetailed() DetailedStatus {
	detailed := DetailedStatus{
		HealthStatus: h.CheckBasic(),
		Redis:        "disabled",
		Goroutines:   runtime.NumGoroutine(),
	}

	if cache.GetClient() != nil {
		if cache.IsHealthy() {
			detailed.Redis = "healthy"
		} else {
			detailed.Redis = "unhealthy"
		}
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		detailed.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		detailed.MemPercent = vm.UsedPercent
		detailed.MemUsedMB = vm.Used / 1024 / 1024
	}

	return detailed
}

func (h *HealthChecker) checkDatabase() DatabaseHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return DatabaseHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return DatabaseHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}
