// Package reconcile defines the three-way reconcile outcome spec.md §4.1
// names -- awaitChange, requeueAfter(d), error(e) -- and the shared
// Context every controller's reconcile function receives. It adapts that
// outcome onto controller-runtime's reconcile.Reconciler so the rest of
// the framework (watches, work queues, dispatch) can stay
// controller-runtime's own, generalized from the client-go workqueue shape
// whereabouts' pkg/node-controller hand-rolls.
package reconcile

import (
	"context"
	"time"

	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	"github.com/juniper/cnm/internal/cnmlog"
	"github.com/juniper/cnm/internal/config"
	"github.com/juniper/cnm/internal/metrics"
)

// errorPenalty is the fixed backoff spec.md §4.1/§7 specifies for a
// reconcile that returned an error: "the framework logs and re-queues
// after a fixed penalty (5 minutes)". This deliberately bypasses
// controller-runtime's default exponential-backoff rate limiter so every
// controller in this codebase observes the same penalty.
const errorPenalty = 5 * time.Minute

// Outcome is the value every controller's Reconcile function returns.
type Outcome struct {
	await        bool
	requeueAfter time.Duration
	err          error
}

// AwaitChange removes the key from the queue; it returns only when a
// further watch event lands.
func AwaitChange() Outcome { return Outcome{await: true} }

// RequeueAfter schedules the key to return to the queue after d, without
// logging an error.
func RequeueAfter(d time.Duration) Outcome { return Outcome{requeueAfter: d} }

// Error logs err and requeues after the fixed errorPenalty.
func Error(err error) Outcome { return Outcome{err: err} }

// Context is the shared, process-wide dependency set passed to every
// reconcile function: the API client and the static config as loaded at
// startup (a config reload does not update it). Controllers must not
// reach for ambient globals instead.
type Context struct {
	Client client.Client
	Config config.Config
}

// Func is the signature every per-kind controller's reconcile logic
// implements.
type Func func(ctx context.Context, rc *Context, key client.ObjectKey) Outcome

// Adapt wraps fn as a controller-runtime reconcile.Func, translating
// Outcome into (ctrl.Result, error) and applying the fixed error penalty
// and logging policy in one place.
func Adapt(rc *Context, name string, fn Func) reconcile.Func {
	return func(ctx context.Context, req reconcile.Request) (ctrl.Result, error) {
		out := fn(ctx, rc, req.NamespacedName)
		switch {
		case out.err != nil:
			metrics.ReconcileRequeues.WithLabelValues(name, "error").Inc()
			cnmlog.Errorf("%s: reconcile %s failed: %v", name, req.NamespacedName, out.err)
			return ctrl.Result{RequeueAfter: errorPenalty}, nil
		case out.requeueAfter > 0:
			metrics.ReconcileRequeues.WithLabelValues(name, "requeueAfter").Inc()
			return ctrl.Result{RequeueAfter: out.requeueAfter}, nil
		default:
			metrics.ReconcileRequeues.WithLabelValues(name, "awaitChange").Inc()
			return ctrl.Result{}, nil
		}
	}
}
