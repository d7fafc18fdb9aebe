package controllers

import (
	"context"
	"sort"
	"time"

	"k8s.io/apimachinery/pkg/labels"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/k8sutil"
	"github.com/juniper/cnm/internal/reconcile"
	"github.com/juniper/cnm/internal/topology"
)

// ReconcileVrrpGroup implements spec.md §4.2's VrrpGroupController: resolve
// interfaceSelector into a set of Interfaces, fan a Vrrp child out per
// match, derive topology the same way InterfaceGroupController does, and
// cascade-delete children through a finalizer (the one controller in this
// set that needs one, since Vrrp children aren't pod-owned).
func ReconcileVrrpGroup(ctx context.Context, rc *reconcile.Context, key client.ObjectKey) reconcile.Outcome {
	found, err := k8sutil.Get(ctx, rc.Client, key.Namespace, key.Name, &cnmv1.VrrpGroup{})
	if err != nil {
		return reconcile.Error(err)
	}
	group, ok := found.Get()
	if !ok {
		return reconcile.AwaitChange()
	}

	if !group.DeletionTimestamp.IsZero() {
		return reconcileVrrpGroupDelete(ctx, rc, group)
	}

	if err := k8sutil.AddFinalizer(ctx, rc.Client, group, cnmv1.FinalizerName); err != nil {
		return reconcile.Error(err)
	}

	interfaces, err := resolveInterfaceSelector(ctx, rc, key.Namespace, group.Spec.InterfaceSelector)
	if err != nil {
		return reconcile.Error(err)
	}

	var childNames []string
	for _, iface := range interfaces {
		childName := iface.Name
		spec := group.Spec.VrrpTemplate
		if err := k8sutil.CreateOrUpdate(ctx, rc.Client, key.Namespace, childName,
			func() *cnmv1.Vrrp { return &cnmv1.Vrrp{} },
			func(obj *cnmv1.Vrrp) {
				obj.Labels = map[string]string{
					cnmv1.LabelVrrpGroup:       group.Name,
					cnmv1.LabelInstanceType:    iface.Labels[cnmv1.LabelInstanceType],
					cnmv1.LabelInterfaceParent: iface.Name,
				}
				if v, ok := iface.Labels[cnmv1.LabelInstanceSelector]; ok {
					obj.Labels[cnmv1.LabelInstanceSelector] = v
				}
				obj.Spec = spec
			}); err != nil {
			return reconcile.Error(err)
		}
		childNames = append(childNames, childName)
	}

	pending, err := deriveVrrpTopology(ctx, rc, key.Namespace, group, interfaces)
	if err != nil {
		return reconcile.Error(err)
	}

	sort.Strings(childNames)
	group.Status.VrrpReferences = childNames
	if err := k8sutil.PatchStatus(ctx, rc.Client, group); err != nil {
		return reconcile.Error(err)
	}
	if pending != nil {
		return *pending
	}
	return reconcile.AwaitChange()
}

func reconcileVrrpGroupDelete(ctx context.Context, rc *reconcile.Context, group *cnmv1.VrrpGroup) reconcile.Outcome {
	var children cnmv1.VrrpList
	sel := labels.SelectorFromSet(map[string]string{cnmv1.LabelVrrpGroup: group.Name})
	if err := k8sutil.List(ctx, rc.Client, group.Namespace, sel, &children); err != nil {
		return reconcile.Error(err)
	}
	if len(children.Items) > 0 {
		for i := range children.Items {
			if err := k8sutil.Delete(ctx, rc.Client, &children.Items[i]); err != nil {
				return reconcile.Error(err)
			}
		}
		return reconcile.RequeueAfter(time.Second)
	}
	if err := k8sutil.DelFinalizer(ctx, rc.Client, group, cnmv1.FinalizerName); err != nil {
		return reconcile.Error(err)
	}
	return reconcile.AwaitChange()
}

// resolveInterfaceSelector implements spec.md §4.2's "resolves its
// interfaceSelector (label selector, group parent, or literal device)".
func resolveInterfaceSelector(ctx context.Context, rc *reconcile.Context, ns string, sel cnmv1.InstanceSelector) ([]cnmv1.Interface, error) {
	var list cnmv1.InterfaceList
	switch {
	case sel.GroupRef != nil:
		labelSel := labels.SelectorFromSet(map[string]string{cnmv1.LabelInterfaceGroup: sel.GroupRef.Name})
		if err := k8sutil.List(ctx, rc.Client, ns, labelSel, &list); err != nil {
			return nil, err
		}
	case sel.Literal != "":
		found, err := k8sutil.Get(ctx, rc.Client, ns, sel.Literal, &cnmv1.Interface{})
		if err != nil {
			return nil, err
		}
		if iface, ok := found.Get(); ok {
			return []cnmv1.Interface{*iface}, nil
		}
		return nil, nil
	case len(sel.LabelSelector) > 0:
		labelSel := labels.SelectorFromSet(sel.LabelSelector)
		if err := k8sutil.List(ctx, rc.Client, ns, labelSel, &list); err != nil {
			return nil, err
		}
	}
	return list.Items, nil
}

func deriveVrrpTopology(ctx context.Context, rc *reconcile.Context, ns string, group *cnmv1.VrrpGroup, interfaces []cnmv1.Interface) (*reconcile.Outcome, error) {
	members := make([]topology.Member, 0, len(interfaces))
	for _, iface := range interfaces {
		members = append(members, topology.Member{Name: iface.Name, V4: iface.Spec.V4Address, V6: iface.Spec.V6Address})
	}
	peers, err := topology.DerivePeers(members, group.Spec.VrrpTemplate.V4SubnetFilter, group.Spec.VrrpTemplate.V6SubnetFilter)
	if err != nil {
		return nil, err
	}

	vaddr, out, handled := resolveVirtualAddress(ctx, rc, ns, group.Name+"-virtual-address", "v4", virtualAddressOf(group.Spec.VrrpTemplate.VirtualAddress, true))
	v6addr, out6, handled6 := resolveVirtualAddress(ctx, rc, ns, group.Name+"-virtual-address", "v6", virtualAddressOf(group.Spec.VrrpTemplate.VirtualAddress, false))
	var pending *reconcile.Outcome
	if out != nil {
		pending = out
	}
	if out6 != nil {
		pending = out6
	}

	for _, iface := range interfaces {
		childFound, err := k8sutil.Get(ctx, rc.Client, ns, iface.Name, &cnmv1.Vrrp{})
		if err != nil {
			return nil, err
		}
		child, ok := childFound.Get()
		if !ok {
			continue
		}
		var peerV4, peerV6 []string
		for _, p := range peers[iface.Name] {
			if p.V4 != "" {
				peerV4 = append(peerV4, p.V4)
			}
			if p.V6 != "" {
				peerV6 = append(peerV6, p.V6)
			}
		}
		child.Status.Vrrp.Unicast = cnmv1.VrrpUnicast{
			LocalV4:    iface.Spec.V4Address,
			PeerV4List: peerV4,
			LocalV6:    iface.Spec.V6Address,
			PeerV6List: peerV6,
		}
		if handled && !vaddr.pending {
			child.Status.Vrrp.VirtualAddress.V4 = vaddr.value
		}
		if handled6 && !v6addr.pending {
			child.Status.Vrrp.VirtualAddress.V6 = v6addr.value
		}
		if err := k8sutil.PatchStatus(ctx, rc.Client, child); err != nil {
			return nil, err
		}
	}
	return pending, nil
}
