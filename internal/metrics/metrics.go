// Package metrics is the prometheus surface the cnm-controller binary
// exposes, adapted from whereabouts' pkg/metrics: same promhttp.Handler
// mount and graceful-shutdown server shape, trimmed of the pprof and
// runtime-klog-level endpoints the original bundled in (cnm's log level
// is already hot-reloadable through internal/config.Watcher, so a second
// HTTP path to the same knob would just be two ways to race each other).
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/juniper/cnm/internal/cnmlog"
)

var (
	// ReconcileRequeues counts every reconcile outcome by controller name
	// and outcome, the first thing an operator checks when a CR seems stuck.
	ReconcileRequeues = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cnm_reconcile_total",
		Help: "Reconcile invocations by controller and outcome.",
	}, []string{"controller", "outcome"})

	// QueueDepth is a per-controller workqueue-depth gauge. It is
	// registered but nothing in this module sets it, so it reports no
	// series.
	QueueDepth = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cnm_workqueue_depth",
		Help: "Approximate depth of each controller's workqueue.",
	}, []string{"controller"})

	// PoolAllocations tracks live allocation counts per Pool, the same
	// inUse counter PoolStatus carries, republished so it survives a CR
	// delete and can be graphed over time.
	PoolAllocations = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cnm_pool_allocations_in_use",
		Help: "Pool.status.inUse, republished per Pool.",
	}, []string{"pool"})

	// JunosPushDuration times each gRPC configuration push to a cRPD
	// instance, keyed by whether the push succeeded.
	JunosPushDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cnm_junos_push_duration_seconds",
		Help:    "Duration of gRPC configuration pushes to cRPD management interfaces.",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(ReconcileRequeues, QueueDepth, PoolAllocations, JunosPushDuration)
}

// ObservePush records one gRPC push's duration under "ok" or "error".
func ObservePush(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	JunosPushDuration.WithLabelValues(result).Observe(d.Seconds())
}

// Serve runs the metrics HTTP server until ctx is cancelled, mirroring
// whereabouts' startMetricsServer shutdown handling.
func Serve(ctx context.Context, bindAddress string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: bindAddress, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		cnmlog.Verbosef("metrics: listening on %s", bindAddress)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
