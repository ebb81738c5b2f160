package health

import (
	"context"
	"fmt"
	"time"
)

// SimpleChecker превращает функцию вида Ping в проверку: ошибка означает unhealthy.
type SimpleChecker struct {
	name string
	ping func(ctx context.Context) error
}

func NewSimpleChecker(name string, ping func(ctx context.Context) error) *SimpleChecker {
	return &SimpleChecker{name: name, ping: ping}
}

func (c *SimpleChecker) Check(ctx context.Context) Check {
	return measure(c.name, func(check *Check) {
		if err := c.ping(ctx); err != nil {
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		}
	})
}

// BacklogChecker следит за размером очереди, например pending-событий outbox.
// Превышение threshold даёт degraded; нулевой threshold отключает порог.
type BacklogChecker struct {
	name      string
	threshold int
	backlog   func(ctx context.Context) (int, error)
}

func NewBacklogChecker(name string, threshold int, backlog func(ctx context.Context) (int, error)) *BacklogChecker {
	return &BacklogChecker{name: name, threshold: threshold, backlog: backlog}
}

func (c *BacklogChecker) Check(ctx context.Context) Check {
	return measure(c.name, func(check *Check) {
		size, err := c.backlog(ctx)
		switch {
		case err != nil:
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		case c.threshold > 0 && size > c.threshold:
			check.Status = StatusDegraded
			check.Message = fmt.Sprintf("backlog %d exceeds threshold %d", size, c.threshold)
		}
	})
}

// measure выполняет fn над healthy-проверкой и записывает её длительность.
func measure(name string, fn func(check *Check)) Check {
	start := time.Now()
	check := Check{Name: name, Status: StatusHealthy}
	fn(&check)
	check.DurationMs = time.Since(start).Milliseconds()
	return check
}
