package controllers

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/k8sutil"
	"github.com/juniper/cnm/internal/reconcile"
)

// ReconcileCrpd exists so the Crpd kind participates in the framework's
// watch/queue machinery: CrpdGroupController derives a Crpd's spec/labels,
// the per-pod init agent writes its status directly, and this reconcile
// has nothing further to derive. Its only job is to confirm the object
// still exists, so cross-watches anchored on Crpd events (InterfaceGroup,
// BgpRouterGroup, RoutingInstanceGroup fan-out) have somewhere to land.
func ReconcileCrpd(ctx context.Context, rc *reconcile.Context, key client.ObjectKey) reconcile.Outcome {
	found, err := k8sutil.Get(ctx, rc.Client, key.Namespace, key.Name, &cnmv1.Crpd{})
	if err != nil {
		return reconcile.Error(err)
	}
	if _, ok := found.Get(); !ok {
		return reconcile.AwaitChange()
	}
	return reconcile.AwaitChange()
}
