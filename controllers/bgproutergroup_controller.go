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

// ReconcileBgpRouterGroup implements spec.md §4.2's BgpRouterGroupController.
// It deliberately labels children with bgpRouterGroup, not
// routingInstanceGroup -- spec.md §9 flags the source's literal reuse of
// routingInstanceGroup here as a copy-paste bug and asks the rewrite to use
// the correct parent label per controller.
func ReconcileBgpRouterGroup(ctx context.Context, rc *reconcile.Context, key client.ObjectKey) reconcile.Outcome {
	found, err := k8sutil.Get(ctx, rc.Client, key.Namespace, key.Name, &cnmv1.BgpRouterGroup{})
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

	var refs []cnmv1.BgpRouterReference
	for _, crpdName := range crpdGroup.Status.CrpdReferences {
		crpdFound, err := k8sutil.Get(ctx, rc.Client, key.Namespace, crpdName, &cnmv1.Crpd{})
		if err != nil {
			return reconcile.Error(err)
		}
		crpd, ok := crpdFound.Get()
		if !ok {
			continue
		}
		podFound, err := k8sutil.Get(ctx, rc.Client, key.Namespace, crpdName, &corev1.Pod{})
		if err != nil {
			return reconcile.Error(err)
		}
		pod, ok := podFound.Get()
		if !ok {
			continue
		}

		spec := group.Spec.BgpRouterTemplate
		if err := k8sutil.CreateOrUpdate(ctx, rc.Client, key.Namespace, crpdName,
			func() *cnmv1.BgpRouter { return &cnmv1.BgpRouter{} },
			func(obj *cnmv1.BgpRouter) {
				obj.Labels = map[string]string{
					cnmv1.LabelInstanceSelector: crpd.Name,
					cnmv1.LabelBgpRouterGroup:   group.Name,
					cnmv1.LabelInstanceType:     cnmv1.InstanceTypeCrpd,
				}
				obj.OwnerReferences = []metav1.OwnerReference{podOwnerReference(pod)}
				obj.Spec = spec
			}); err != nil {
			return reconcile.Error(err)
		}
		refs = append(refs, cnmv1.BgpRouterReference{
			Name:    crpdName,
			LocalV4: spec.V4Address,
			LocalV6: spec.V6Address,
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	group.Status.BgpRouterReferences = refs
	if err := k8sutil.PatchStatus(ctx, rc.Client, group); err != nil {
		return reconcile.Error(err)
	}
	return reconcile.AwaitChange()
}

// bgpRouterGroupOf reads a BgpRouter's own bgpRouterGroup label. Nothing
// calls it: the BgpRouterGroup controller registers no watch on BgpRouter,
// so a BgpRouter event does not enqueue its parent group.
func bgpRouterGroupOf(labels map[string]string) (string, bool) {
	v, ok := labels[cnmv1.LabelBgpRouterGroup]
	return v, ok
}
