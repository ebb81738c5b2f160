// Package health отдаёт liveness, readiness и подробный отчёт о зависимостях сервиса.
package health

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultCheckTimeout = 2 * time.Second

// Status описывает состояние компонента или сервиса целиком.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

func (s Status) severity() int {
	switch s {
	case StatusUnhealthy:
		return 2
	case StatusDegraded:
		return 1
	default:
		return 0
	}
}

// Check хранит результат одной проверки.
type Check struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Response задаёт тело ответа /healthz.
type Response struct {
	Status        Status           `json:"status"`
	Timestamp     time.Time        `json:"timestamp"`
	Checks        map[string]Check `json:"checks,omitempty"`
	Version       string           `json:"version,omitempty"`
	UptimeSeconds int64            `json:"uptime_seconds"`
}

// Checker проверяет одну зависимость.
type Checker interface {
	Check(ctx context.Context) Check
}

// Handler хранит зарегистрированные проверки и выполняет их по запросу.
type Handler struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	version  string
	timeout  time.Duration
	started  time.Time
}

func NewHandler(version string) *Handler {
	return &Handler{
		checkers: make(map[string]Checker),
		version:  version,
		timeout:  defaultCheckTimeout,
		started:  time.Now(),
	}
}

// RegisterChecker добавляет проверку; повторная регистрация имени заменяет прежнюю.
func (h *Handler) RegisterChecker(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// Evaluate выполняет все проверки параллельно с общим таймаутом.
// Итоговый статус равен худшему из статусов проверок.
func (h *Handler) Evaluate(ctx context.Context) Response {
	h.mu.RLock()
	checkers := maps.Clone(h.checkers)
	h.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	results := make(map[string]Check, len(checkers))
	var mu sync.Mutex
	var group errgroup.Group
	for name, checker := range checkers {
		group.Go(func() error {
			check := checker.Check(ctx)
			mu.Lock()
			results[name] = check
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait()

	overall := StatusHealthy
	for _, check := range results {
		if check.Status.severity() > overall.severity() {
			overall = check.Status
		}
	}

	return Response{
		Status:        overall,
		Timestamp:     time.Now().UTC(),
		Checks:        results,
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	}
}

// ServeHTTP отдаёт полный отчёт; 503 только при статусе unhealthy.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h.Evaluate(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus(resp.Status))
	_ = json.NewEncoder(w).Encode(resp)
}

// ReadinessHandler отвечает "ready", пока ни одна зависимость не unhealthy.
func (h *Handler) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	status := h.Evaluate(r.Context()).Status
	body := "ready"
	if status == StatusUnhealthy {
		body = "not ready"
	}
	w.WriteHeader(httpStatus(status))
	_, _ = w.Write([]byte(body))
}

// LivenessHandler не зависит от внешних систем.
func LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func httpStatus(status Status) int {
	if status == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
