package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.PointsCredited("purchase", 30)
	m.PointsCredited("purchase", 0)
	m.PointsDebited("shop", 12)
	m.PurchaseProcessed(false)
	m.PurchaseProcessed(true)
	m.PurchaseProcessed(true)
	m.RoleSyncError("add")
	m.TierTransition("Gold")
	m.NotifyFailure("economy.tier.achieved")
	m.ScheduledJobs(3)
	m.ObserveOperation("debit", time.Millisecond, "insufficient balance")

	assert.Equal(t, 30.0, testutil.ToFloat64(m.pointsMoved.WithLabelValues("credit", "purchase")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.pointsMoved.WithLabelValues("debit", "shop")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.purchases.WithLabelValues("replayed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.roleSyncErrors.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tierTransitions.WithLabelValues("Gold")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.scheduledJobs))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.opErrors.WithLabelValues("debit", "insufficient balance")))
}

func TestRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	require.NoError(t, err)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.PointsCredited("daily", 5)
		m.RoleSyncError("remove")
		m.ScheduledJobs(1)
		m.ObserveOperation("credit", time.Second, "")
	})
}
