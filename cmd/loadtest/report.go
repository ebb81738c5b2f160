package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"text/tabwriter"
	"time"

	"google.golang.org/grpc/codes"
)

type latencySummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

type methodReport struct {
	Calls     int64            `json:"calls"`
	Success   int64            `json:"success"`
	Failed    int64            `json:"failed"`
	ErrorRate float64          `json:"error_rate"`
	Codes     map[string]int64 `json:"codes"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

type report struct {
	StartedAt         time.Time               `json:"started_at"`
	DurationSeconds   float64                 `json:"duration_seconds"`
	TotalScenarios    int64                   `json:"total_scenarios"`
	FailedScenarios   int64                   `json:"failed_scenarios"`
	ErrorRate         float64                 `json:"error_rate"`
	RPS               float64                 `json:"rps"`
	ScenarioLatencyMs latencySummary          `json:"scenario_latency_ms"`
	Methods           map[string]methodReport `json:"methods"`
}

// callLog накапливает коды ответов и задержки одного метода.
type callLog struct {
	byCode  map[codes.Code]int64
	samples []time.Duration
}

func (l *callLog) add(latency time.Duration, code codes.Code) {
	l.byCode[code]++
	l.samples = append(l.samples, latency)
}

func (l *callLog) report() methodReport {
	out := methodReport{Codes: make(map[string]int64, len(l.byCode))}
	for code, n := range l.byCode {
		out.Codes[code.String()] = n
		out.Calls += n
		if code != codes.OK {
			out.Failed += n
		}
	}
	out.Success = out.Calls - out.Failed
	if out.Calls > 0 {
		out.ErrorRate = float64(out.Failed) / float64(out.Calls)
	}
	out.LatencyMs = summarize(l.samples)
	return out
}

type collector struct {
	mu   sync.Mutex
	logs map[string]*callLog
}

func newCollector() *collector {
	return &collector{logs: make(map[string]*callLog)}
}

func (c *collector) record(method string, latency time.Duration, code codes.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := c.logs[method]
	if entry == nil {
		entry = &callLog{byCode: make(map[codes.Code]int64)}
		c.logs[method] = entry
	}
	entry.add(latency, code)
}

// snapshot собирает отчёт; сценарий целиком идёт в верхний уровень, а не в Methods.
func (c *collector) snapshot(startedAt time.Time, elapsed time.Duration) report {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := report{
		StartedAt:       startedAt.UTC(),
		DurationSeconds: elapsed.Seconds(),
		Methods:         make(map[string]methodReport, len(c.logs)),
	}
	for method, entry := range c.logs {
		if method != scenarioMethod {
			out.Methods[method] = entry.report()
			continue
		}
		scenario := entry.report()
		out.TotalScenarios = scenario.Calls
		out.FailedScenarios = scenario.Failed
		out.ErrorRate = scenario.ErrorRate
		out.ScenarioLatencyMs = scenario.LatencyMs
	}
	if elapsed > 0 {
		out.RPS = float64(out.TotalScenarios) / elapsed.Seconds()
	}
	return out
}

func summarize(samples []time.Duration) latencySummary {
	if len(samples) == 0 {
		return latencySummary{}
	}

	ms := make([]float64, len(samples))
	var total float64
	for i, d := range samples {
		ms[i] = float64(d) / float64(time.Millisecond)
		total += ms[i]
	}
	slices.Sort(ms)

	return latencySummary{
		Min: ms[0],
		Max: ms[len(ms)-1],
		Avg: total / float64(len(ms)),
		P50: quantile(ms, 0.50),
		P95: quantile(ms, 0.95),
		P99: quantile(ms, 0.99),
	}
}

// quantile линейно интерполирует между соседними элементами отсортированной выборки.
func quantile(sorted []float64, q float64) float64 {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	i := int(pos)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(i)
	return sorted[i] + (sorted[i+1]-sorted[i])*frac
}

func writeJSONReport(path string, result report) error {
	target := filepath.Clean(path)
	if target == "." || !filepath.IsLocal(target) {
		return fmt.Errorf("output path must be a file inside current directory: %q", path)
	}

	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return os.WriteFile(target, append(body, '\n'), 0o600)
}

func printReport(out io.Writer, result report, cfg config) {
	lat := result.ScenarioLatencyMs
	_, _ = fmt.Fprintf(out, "Load test summary\nmode=%s total=%d failed=%d error_rate=%.4f\n",
		cfg.mode, result.TotalScenarios, result.FailedScenarios, result.ErrorRate)
	_, _ = fmt.Fprintf(out, "duration=%.2fs rps=%.2f\n", result.DurationSeconds, result.RPS)
	_, _ = fmt.Fprintf(out, "scenario latency ms: min=%.2f avg=%.2f p50=%.2f p95=%.2f p99=%.2f max=%.2f\n",
		lat.Min, lat.Avg, lat.P50, lat.P95, lat.P99, lat.Max)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, method := range slices.Sorted(maps.Keys(result.Methods)) {
		m := result.Methods[method]
		_, _ = fmt.Fprintf(tw, "%s:\tcalls=%d\tsuccess=%d\tfailed=%d\terror_rate=%.4f\tp95=%.2fms\n",
			method, m.Calls, m.Success, m.Failed, m.ErrorRate, m.LatencyMs.P95)
	}
	_ = tw.Flush()
}
