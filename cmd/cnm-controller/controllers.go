package main

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/builder"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/manager"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/controllers"
	cnmreconcile "github.com/juniper/cnm/internal/reconcile"
)

// registerControllers wires every spec.md §4.2 controller onto mgr, plus
// the cross-watches that keep a group controller's reconcile re-running
// when one of its children's status changes underneath it (a BgpRouter's
// own reconcile doesn't touch its parent group, so the group's watch has
// to do it instead).
func registerControllers(mgr manager.Manager, rc *cnmreconcile.Context) error {
	type entry struct {
		name   string
		object client.Object
		fn     cnmreconcile.Func
		extra  func(*builder.Builder) *builder.Builder
	}

	entries := []entry{
		{name: "pool", object: &cnmv1.Pool{}, fn: controllers.ReconcilePool},
		{name: "ipaddress", object: &cnmv1.IpAddress{}, fn: controllers.ReconcileIpAddress},
		{name: "crpd", object: &cnmv1.Crpd{}, fn: controllers.ReconcileCrpd},
		{
			name: "crpdgroup", object: &cnmv1.CrpdGroup{}, fn: controllers.ReconcileCrpdGroup,
			extra: func(b *builder.Builder) *builder.Builder {
				return b.Watches(&cnmv1.Crpd{}, handler.EnqueueRequestsFromMapFunc(enqueueByInstanceSelector))
			},
		},
		{
			name: "interfacegroup", object: &cnmv1.InterfaceGroup{}, fn: controllers.ReconcileInterfaceGroup,
			extra: func(b *builder.Builder) *builder.Builder {
				return b.Watches(&cnmv1.Crpd{}, handler.EnqueueRequestsFromMapFunc(enqueueByInstanceSelector))
			},
		},
		{
			name: "vrrpgroup", object: &cnmv1.VrrpGroup{}, fn: controllers.ReconcileVrrpGroup,
			extra: func(b *builder.Builder) *builder.Builder {
				return b.Watches(&cnmv1.Interface{}, handler.EnqueueRequestsFromMapFunc(enqueueByInstanceSelector))
			},
		},
		{
			name: "bgproutergroup", object: &cnmv1.BgpRouterGroup{}, fn: controllers.ReconcileBgpRouterGroup,
			extra: func(b *builder.Builder) *builder.Builder {
				return b.Watches(&cnmv1.Crpd{}, handler.EnqueueRequestsFromMapFunc(enqueueByInstanceSelector))
			},
		},
		{
			name: "routinginstancegroup", object: &cnmv1.RoutingInstanceGroup{}, fn: controllers.ReconcileRoutingInstanceGroup,
			extra: func(b *builder.Builder) *builder.Builder {
				return b.Watches(&cnmv1.Crpd{}, handler.EnqueueRequestsFromMapFunc(enqueueByInstanceSelector))
			},
		},
		{
			name: "junosconfiguration", object: &cnmv1.BgpRouter{}, fn: controllers.ReconcileJunosConfiguration,
			extra: func(b *builder.Builder) *builder.Builder {
				return b.Watches(&corev1.Pod{}, handler.EnqueueRequestsFromMapFunc(enqueueBgpRouterForPod(rc)))
			},
		},
	}

	for _, e := range entries {
		b := ctrl.NewControllerManagedBy(mgr).For(e.object)
		if e.extra != nil {
			b = e.extra(b)
		}
		if err := b.Complete(cnmreconcile.Adapt(rc, e.name, e.fn)); err != nil {
			return err
		}
	}
	return nil
}

// enqueueByInstanceSelector maps any object carrying the instanceSelector
// label onto a reconcile.Request for the CR that label names -- the
// generic shape of every "child changed, re-run my parent group" watch
// in this codebase.
func enqueueByInstanceSelector(_ context.Context, obj client.Object) []reconcile.Request {
	name, ok := obj.GetLabels()[cnmv1.LabelInstanceSelector]
	if !ok {
		return nil
	}
	return []reconcile.Request{{NamespacedName: types.NamespacedName{Namespace: obj.GetNamespace(), Name: name}}}
}

// enqueueBgpRouterForPod re-runs JunosConfigurationController when the pod
// backing a managed BgpRouter gets an IP (or otherwise changes), since the
// BgpRouter CR itself doesn't change at that point.
func enqueueBgpRouterForPod(rc *cnmreconcile.Context) handler.MapFunc {
	return func(ctx context.Context, obj client.Object) []reconcile.Request {
		var routers cnmv1.BgpRouterList
		if err := rc.Client.List(ctx, &routers, client.InNamespace(obj.GetNamespace()), client.MatchingLabels{
			cnmv1.LabelInstanceSelector: obj.GetName(),
		}); err != nil {
			return nil
		}
		var reqs []reconcile.Request
		for _, r := range routers.Items {
			reqs = append(reqs, reconcile.Request{NamespacedName: types.NamespacedName{Namespace: r.Namespace, Name: r.Name}})
		}
		return reqs
	}
}
