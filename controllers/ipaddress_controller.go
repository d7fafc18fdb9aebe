package controllers

import (
	"context"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/k8sutil"
	"github.com/juniper/cnm/internal/metrics"
	"github.com/juniper/cnm/internal/poolmath"
	"github.com/juniper/cnm/internal/reconcile"
)

// ReconcileIpAddress implements spec.md §4.2's IpAddressController:
// allocate on first reconcile (pool status is written before the
// IpAddress's own status, so a crash between the two writes leaks a
// number rather than duplicating it), attach the finalizer, and on
// deletion return the number to the Pool before letting the finalizer go.
func ReconcileIpAddress(ctx context.Context, rc *reconcile.Context, key client.ObjectKey) reconcile.Outcome {
	found, err := k8sutil.Get(ctx, rc.Client, key.Namespace, key.Name, &cnmv1.IpAddress{})
	if err != nil {
		return reconcile.Error(err)
	}
	ip, ok := found.Get()
	if !ok {
		return reconcile.AwaitChange()
	}

	if !ip.DeletionTimestamp.IsZero() {
		return reconcileIpAddressDelete(ctx, rc, ip)
	}

	if err := k8sutil.AddFinalizer(ctx, rc.Client, ip, cnmv1.FinalizerName); err != nil {
		return reconcile.Error(err)
	}

	if ip.Status.Address != "" {
		return reconcile.AwaitChange()
	}

	poolFound, err := k8sutil.Get(ctx, rc.Client, key.Namespace, ip.Spec.Pool.Name, &cnmv1.Pool{})
	if err != nil {
		return reconcile.Error(err)
	}
	pool, ok := poolFound.Get()
	if !ok {
		return reconcile.Error(errMissingPool(ip.Spec.Pool.Name))
	}

	bounds, err := boundsForPool(pool.Spec)
	if err != nil {
		return reconcile.Error(err)
	}

	alloc, err := poolmath.AllocateOffset(pool.Status.MaxSize, pool.Status.NextAvailable, pool.Status.ReleasedNumbers)
	if err != nil {
		return reconcile.Error(err)
	}

	pool.Status.NextAvailable = alloc.NextAvailable
	pool.Status.ReleasedNumbers = alloc.ReleasedNumbers
	pool.Status.InUse++
	// Optimistic concurrency: if a sibling IpAddress reconcile updated
	// this Pool first, Update fails with a conflict and this reconcile
	// is requeued to retry against the newer resourceVersion (spec.md
	// §5: "the loser retries on the next requeue").
	if err := rc.Client.Status().Update(ctx, pool); err != nil {
		if apierrors.IsConflict(err) {
			return reconcile.Error(err)
		}
		return reconcile.Error(err)
	}
	metrics.PoolAllocations.WithLabelValues(pool.Name).Set(float64(pool.Status.InUse))

	address, err := bounds.Format(alloc.Offset)
	if err != nil {
		return reconcile.Error(err)
	}
	ip.Status.Address = address
	if err := k8sutil.PatchStatus(ctx, rc.Client, ip); err != nil {
		return reconcile.Error(err)
	}
	return reconcile.AwaitChange()
}

func reconcileIpAddressDelete(ctx context.Context, rc *reconcile.Context, ip *cnmv1.IpAddress) reconcile.Outcome {
	if ip.Status.Address != "" {
		poolFound, err := k8sutil.Get(ctx, rc.Client, ip.Namespace, ip.Spec.Pool.Name, &cnmv1.Pool{})
		if err != nil {
			return reconcile.Error(err)
		}
		if pool, ok := poolFound.Get(); ok {
			bounds, err := boundsForPool(pool.Spec)
			if err != nil {
				return reconcile.Error(err)
			}
			offset, err := bounds.ParseOffset(ip.Status.Address)
			if err != nil {
				return reconcile.Error(err)
			}
			pool.Status.ReleasedNumbers = poolmath.ReleaseOffset(pool.Status.ReleasedNumbers, offset)
			if pool.Status.InUse > 0 {
				pool.Status.InUse--
			}
			if err := rc.Client.Status().Update(ctx, pool); err != nil {
				if apierrors.IsConflict(err) {
					return reconcile.Error(err)
				}
				return reconcile.Error(err)
			}
			metrics.PoolAllocations.WithLabelValues(pool.Name).Set(float64(pool.Status.InUse))
		}
	}
	if err := k8sutil.DelFinalizer(ctx, rc.Client, ip, cnmv1.FinalizerName); err != nil {
		return reconcile.Error(err)
	}
	return reconcile.AwaitChange()
}

type errMissingPool string

func (e errMissingPool) Error() string {
	return "referenced pool " + string(e) + " does not exist"
}
