package controllers

import (
	"context"
	"sort"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/k8sutil"
	"github.com/juniper/cnm/internal/reconcile"
)

// ReconcileRoutingInstanceGroup fans a RoutingInstance out per Crpd
// instance under InstanceParent, the same shape BgpRouterGroupController
// uses, with its own correct parent label (routingInstanceGroup) per
// spec.md §9's label-bug note.
func ReconcileRoutingInstanceGroup(ctx context.Context, rc *reconcile.Context, key client.ObjectKey) reconcile.Outcome {
	found, err := k8sutil.Get(ctx, rc.Client, key.Namespace, key.Name, &cnmv1.RoutingInstanceGroup{})
	if err != nil {
		return reconcile.Error(err)
	}
	group, ok := found.Get()
	if !ok {
		return reconcile.AwaitChange()
	}

	if group.Spec.InstanceParent == nil || group.Spec.InstanceParent.Type != cnmv1.InstanceTypeCrpd {
		return reconcile.AwaitChange()
	}

	crpdGroupFound, err := k8sutil.Get(ctx, rc.Client, key.Namespace, group.Spec.InstanceParent.Reference, &cnmv1.CrpdGroup{})
	if err != nil {
		return reconcile.Error(err)
	}
	crpdGroup, ok := crpdGroupFound.Get()
	if !ok {
		return reconcile.Error(errMissingParent("CrpdGroup", group.Spec.InstanceParent.Reference))
	}

	var refs []string
	for _, crpdName := range crpdGroup.Status.CrpdReferences {
		podFound, err := k8sutil.Get(ctx, rc.Client, key.Namespace, crpdName, &corev1.Pod{})
		if err != nil {
			return reconcile.Error(err)
		}
		pod, ok := podFound.Get()
		if !ok {
			continue
		}

		spec := group.Spec.RoutingInstanceTemplate
		if err := k8sutil.CreateOrUpdate(ctx, rc.Client, key.Namespace, crpdName,
			func() *cnmv1.RoutingInstance { return &cnmv1.RoutingInstance{} },
			func(obj *cnmv1.RoutingInstance) {
				obj.Labels = map[string]string{
					cnmv1.LabelInstanceSelector:     crpdName,
					cnmv1.LabelRoutingInstanceGroup: group.Name,
					cnmv1.LabelInstanceType:         cnmv1.InstanceTypeCrpd,
				}
				obj.OwnerReferences = []metav1.OwnerReference{podOwnerReference(pod)}
				obj.Spec = spec
			}); err != nil {
			return reconcile.Error(err)
		}
		refs = append(refs, crpdName)
	}

	sort.Strings(refs)
	group.Status.RoutingInstanceReferences = refs
	if err := k8sutil.PatchStatus(ctx, rc.Client, group); err != nil {
		return reconcile.Error(err)
	}
	return reconcile.AwaitChange()
}
