package ops

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/models"
)

// Report kinds served by the catalog.
const (
	ReportUsage  = "usage"
	ReportHealth = "health"
	ReportAlerts = "alerts"
)

// HealthView supplies the cached health snapshot to reports.
type HealthView interface {
	Snapshot() models.HealthSnapshot
}

// UsageBucketView is one usage bucket flattened for JSON export.
type UsageBucketView struct {
	BucketKey
	UsageDelta
}

// Report is one generated ops report.
type Report struct {
	ID      string    `json:"id"`
	TakenAt time.Time `json:"taken_at"`

	Usage             []UsageBucketView      `json:"usage,omitempty"`
	FreeCallsToday    int                    `json:"free_calls_today,omitempty"`
	PaidSpendMonthUSD float64                `json:"paid_spend_month_usd,omitempty"`
	Health            *models.HealthSnapshot `json:"health,omitempty"`
	Alerts            []Alert                `json:"alerts,omitempty"`
}

// CatalogEntry describes one available report kind.
type CatalogEntry struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Reporter generates the ops reports on a cadence and keeps the latest of
// each kind for the control API.
type Reporter struct {
	ledger *UsageLedger
	alerts *AlertManager
	health HealthView
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	latest map[string]Report

	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewReporter builds a reporter over the ops sources.
func NewReporter(ledger *UsageLedger, alerts *AlertManager, health HealthView, interval time.Duration, logger *slog.Logger, now func() time.Time) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Reporter{
		ledger:   ledger,
		alerts:   alerts,
		health:   health,
		logger:   logger.With("component", "reports"),
		now:      now,
		latest:   make(map[string]Report),
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the snapshot loop.
func (r *Reporter) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		r.generateAll()
		for {
			select {
			case <-r.stopCh:
				return
			case <-ticker.C:
				r.generateAll()
			}
		}
	}()
}

// Stop terminates the snapshot loop.
func (r *Reporter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

// Catalog lists the available report kinds with their generation times.
func (r *Reporter) Catalog() []CatalogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CatalogEntry, 0, len(r.latest))
	for id, rep := range r.latest {
		out = append(out, CatalogEntry{ID: id, GeneratedAt: rep.TakenAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Latest returns the freshest report of a kind, generating one on demand
// when the loop has not produced it yet.
func (r *Reporter) Latest(id string) (Report, bool) {
	r.mu.Lock()
	rep, ok := r.latest[id]
	r.mu.Unlock()
	if ok {
		return rep, true
	}
	rep, ok = r.generate(id)
	if ok {
		r.mu.Lock()
		r.latest[id] = rep
		r.mu.Unlock()
	}
	return rep, ok
}

func (r *Reporter) generateAll() {
	for _, id := range []string{ReportUsage, ReportHealth, ReportAlerts} {
		if rep, ok := r.generate(id); ok {
			r.mu.Lock()
			r.latest[id] = rep
			r.mu.Unlock()
		}
	}
}

func (r *Reporter) generate(id string) (Report, bool) {
	rep := Report{ID: id, TakenAt: r.now()}
	switch id {
	case ReportUsage:
		if r.ledger == nil {
			return rep, false
		}
		summary := r.ledger.Summary()
		rep.Usage = make([]UsageBucketView, 0, len(summary))
		for key, delta := range summary {
			rep.Usage = append(rep.Usage, UsageBucketView{BucketKey: key, UsageDelta: delta})
		}
		sort.Slice(rep.Usage, func(i, j int) bool {
			if rep.Usage[i].Tier != rep.Usage[j].Tier {
				return rep.Usage[i].Tier < rep.Usage[j].Tier
			}
			return rep.Usage[i].ModelID < rep.Usage[j].ModelID
		})
		rep.FreeCallsToday = r.ledger.FreeCallsToday()
		rep.PaidSpendMonthUSD = r.ledger.PaidSpendMonthUSD()
	case ReportHealth:
		if r.health == nil {
			return rep, false
		}
		snap := r.health.Snapshot()
		rep.Health = &snap
	case ReportAlerts:
		if r.alerts == nil {
			return rep, false
		}
		rep.Alerts = r.alerts.List(true)
	default:
		return rep, false
	}
	return rep, true
}
