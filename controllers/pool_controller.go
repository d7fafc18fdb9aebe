// Package controllers holds the per-kind reconcile functions that make up
// the Reconciliation Framework's controller set, one file per CR kind,
// following the layout whereabouts' pkg/reconciler uses for its single
// IPPool reconciler, generalized to the thirteen kinds this control plane
// manages.
package controllers

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/k8sutil"
	"github.com/juniper/cnm/internal/poolmath"
	"github.com/juniper/cnm/internal/reconcile"
)

// ReconcilePool implements spec.md §4.2's PoolController: on first
// reconcile (empty status) it seeds maxSize/nextAvailable/inUse from the
// spec's variant, then goes quiet -- only IpAddressController mutates a
// Pool's status after that.
func ReconcilePool(ctx context.Context, rc *reconcile.Context, key client.ObjectKey) reconcile.Outcome {
	found, err := k8sutil.Get(ctx, rc.Client, key.Namespace, key.Name, &cnmv1.Pool{})
	if err != nil {
		return reconcile.Error(err)
	}
	pool, ok := found.Get()
	if !ok {
		return reconcile.AwaitChange()
	}

	if !poolStatusEmpty(pool.Status) {
		return reconcile.AwaitChange()
	}

	bounds, err := boundsForPool(pool.Spec)
	if err != nil {
		return reconcile.Error(err)
	}

	pool.Status = cnmv1.PoolStatus{
		MaxSize:         bounds.MaxSize(),
		NextAvailable:   0,
		InUse:           0,
		ReleasedNumbers: nil,
	}
	if err := k8sutil.PatchStatus(ctx, rc.Client, pool); err != nil {
		return reconcile.Error(err)
	}
	return reconcile.AwaitChange()
}

func poolStatusEmpty(s cnmv1.PoolStatus) bool {
	return s.MaxSize == 0 && s.NextAvailable == 0 && s.InUse == 0 && len(s.ReleasedNumbers) == 0
}

// boundsForPool derives the poolmath.Bounds for a Pool's declared family,
// shared by the controller and the IpAddress allocator so they can never
// disagree about a Pool's offset space.
func boundsForPool(spec cnmv1.PoolSpec) (poolmath.Bounds, error) {
	switch spec.Family {
	case cnmv1.PoolFamilyV4:
		return poolmath.NewV4Bounds(spec.Prefix, spec.Length)
	case cnmv1.PoolFamilyV6:
		return poolmath.NewV6Bounds(spec.Prefix, spec.Length)
	case cnmv1.PoolFamilyRouteTarget:
		return poolmath.NewRouteTargetBounds(spec.Start, spec.Size)
	default:
		return poolmath.Bounds{}, errUnknownPoolFamily(spec.Family)
	}
}

type errUnknownPoolFamily cnmv1.PoolFamily

func (e errUnknownPoolFamily) Error() string {
	return "unknown pool family " + string(e)
}
