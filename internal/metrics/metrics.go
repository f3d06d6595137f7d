package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rewards"

// Metrics holds the economy collectors. A nil *Metrics records nothing.
type Metrics struct {
	opDuration      *prometheus.HistogramVec
	opErrors        *prometheus.CounterVec
	pointsMoved     *prometheus.CounterVec
	purchases       *prometheus.CounterVec
	roleSyncErrors  *prometheus.CounterVec
	tierTransitions *prometheus.CounterVec
	notifyFailures  *prometheus.CounterVec
	scheduledJobs   prometheus.Gauge
}

// New registers the collectors on reg, the default registerer when nil.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of ledger operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		opErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "Failed ledger operations by error kind.",
		}, []string{"operation", "kind"}),
		pointsMoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_total",
			Help:      "Points credited or debited by reason.",
		}, []string{"direction", "reason"}),
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_total",
			Help:      "Purchase log lines processed.",
		}, []string{"outcome"}),
		roleSyncErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "role_sync_errors_total",
			Help:      "Role add or remove calls that failed during a sync.",
		}, []string{"action"}),
		tierTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tier_transitions_total",
			Help:      "Tier changes detected by role sync.",
		}, []string{"tier"}),
		notifyFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notify_failures_total",
			Help:      "Direct messages that could not be delivered.",
		}, []string{"topic"}),
		scheduledJobs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scheduled_role_expirations",
			Help:      "Temporary role expirations currently armed.",
		}),
	}

	collectors := []prometheus.Collector{
		m.opDuration, m.opErrors, m.pointsMoved, m.purchases,
		m.roleSyncErrors, m.tierTransitions, m.notifyFailures, m.scheduledJobs,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return nil, fmt.Errorf("register economy metric: %w", err)
		}
	}

	return m, nil
}

// ObserveOperation records latency and, for failures, the error kind
func (m *Metrics) ObserveOperation(op string, d time.Duration, kind string) {
	if m == nil {
		return
	}
	m.opDuration.WithLabelValues(op).Observe(d.Seconds())
	if kind != "" {
		m.opErrors.WithLabelValues(op, kind).Inc()
	}
}

// PointsCredited counts points added to balances
func (m *Metrics) PointsCredited(reason string, amount int) {
	if m == nil || amount <= 0 {
		return
	}
	m.pointsMoved.WithLabelValues("credit", reason).Add(float64(amount))
}

// PointsDebited counts points removed from balances
func (m *Metrics) PointsDebited(reason string, amount int) {
	if m == nil || amount <= 0 {
		return
	}
	m.pointsMoved.WithLabelValues("debit", reason).Add(float64(amount))
}

// PurchaseProcessed counts a purchase as recorded or replayed
func (m *Metrics) PurchaseProcessed(replayed bool) {
	if m == nil {
		return
	}
	outcome := "recorded"
	if replayed {
		outcome = "replayed"
	}
	m.purchases.WithLabelValues(outcome).Inc()
}

// RoleSyncError counts a failed add or remove
func (m *Metrics) RoleSyncError(action string) {
	if m == nil {
		return
	}
	m.roleSyncErrors.WithLabelValues(action).Inc()
}

// TierTransition counts a detected tier change
func (m *Metrics) TierTransition(t string) {
	if m == nil {
		return
	}
	m.tierTransitions.WithLabelValues(t).Inc()
}

// NotifyFailure counts an undelivered DM
func (m *Metrics) NotifyFailure(topic string) {
	if m == nil {
		return
	}
	m.notifyFailures.WithLabelValues(topic).Inc()
}

// ScheduledJobs sets the number of armed expirations
func (m *Metrics) ScheduledJobs(n int) {
	if m == nil {
		return
	}
	m.scheduledJobs.Set(float64(n))
}
