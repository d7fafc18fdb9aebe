package controllers

import (
	"context"
	"sort"

	"github.com/imdario/mergo"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/k8sutil"
	"github.com/juniper/cnm/internal/reconcile"
	"github.com/juniper/cnm/internal/topology"
)

// ReconcileInterfaceGroup implements spec.md §4.2's InterfaceGroupController:
// fan the parent's discovered interfaces out into per-instance Interface
// CRs, derive VRRP topology among siblings, and materialize the group's
// shared virtual address.
func ReconcileInterfaceGroup(ctx context.Context, rc *reconcile.Context, key client.ObjectKey) reconcile.Outcome {
	found, err := k8sutil.Get(ctx, rc.Client, key.Namespace, key.Name, &cnmv1.InterfaceGroup{})
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

	var crpds cnmv1.CrpdList
	sel := labels.SelectorFromSet(map[string]string{cnmv1.LabelInstanceSelector: group.Spec.InstanceParent.Reference})
	if err := k8sutil.List(ctx, rc.Client, key.Namespace, sel, &crpds); err != nil {
		return reconcile.Error(err)
	}

	var childNames []string
	for _, c := range crpds.Items {
		inst, ok := c.Status.Instances[c.Name]
		if !ok {
			continue
		}
		iface, ok := inst.Interfaces[group.Spec.InterfaceName]
		if !ok {
			continue
		}

		podFound, err := k8sutil.Get(ctx, rc.Client, key.Namespace, c.Name, &corev1.Pod{})
		if err != nil {
			return reconcile.Error(err)
		}
		pod, ok := podFound.Get()
		if !ok {
			continue
		}

		childName := c.Name + "-" + group.Spec.InterfaceName
		spec := group.Spec.InterfaceTemplate
		if err := mergo.Merge(&spec, cnmv1.InterfaceSpec{
			Device:    group.Spec.InterfaceName,
			V4Address: iface.V4,
			V6Address: iface.V6,
		}, mergo.WithOverride); err != nil {
			return reconcile.Error(err)
		}

		if err := k8sutil.CreateOrUpdate(ctx, rc.Client, key.Namespace, childName,
			func() *cnmv1.Interface { return &cnmv1.Interface{} },
			func(obj *cnmv1.Interface) {
				obj.Labels = map[string]string{
					cnmv1.LabelInterfaceGroup:   group.Name,
					cnmv1.LabelInstanceSelector: c.Name,
					cnmv1.LabelInstanceType:     cnmv1.InstanceTypeCrpd,
				}
				obj.OwnerReferences = []metav1.OwnerReference{podOwnerReference(pod)}
				obj.Spec = spec
			}); err != nil {
			return reconcile.Error(err)
		}
		childNames = append(childNames, childName)
	}

	pending, err := deriveInterfaceTopology(ctx, rc, key.Namespace, group)
	if err != nil {
		return reconcile.Error(err)
	}

	sort.Strings(childNames)
	group.Status.InterfaceReferences = childNames
	if err := k8sutil.PatchStatus(ctx, rc.Client, group); err != nil {
		return reconcile.Error(err)
	}
	if pending != nil {
		return *pending
	}
	return reconcile.AwaitChange()
}

// deriveInterfaceTopology patches every sibling Interface's derived VRRP
// topology and returns a non-nil outcome when the group's virtual address
// is still being allocated, so the caller requeues instead of going quiet.
func deriveInterfaceTopology(ctx context.Context, rc *reconcile.Context, ns string, group *cnmv1.InterfaceGroup) (*reconcile.Outcome, error) {
	var children cnmv1.InterfaceList
	sel := labels.SelectorFromSet(map[string]string{cnmv1.LabelInterfaceGroup: group.Name})
	if err := k8sutil.List(ctx, rc.Client, ns, sel, &children); err != nil {
		return nil, err
	}

	members := make([]topology.Member, 0, len(children.Items))
	for _, c := range children.Items {
		members = append(members, topology.Member{Name: c.Name, V4: c.Spec.V4Address, V6: c.Spec.V6Address})
	}
	peers, err := topology.DerivePeers(members, group.Spec.InterfaceTemplate.V4SubnetFilter, group.Spec.InterfaceTemplate.V6SubnetFilter)
	if err != nil {
		return nil, err
	}

	vaddr, out, handled := resolveVirtualAddress(ctx, rc, ns, group.Name+"-virtual-address", "v4", virtualAddressOf(group.Spec.InterfaceTemplate.VirtualAddress, true))
	v6addr, out6, handled6 := resolveVirtualAddress(ctx, rc, ns, group.Name+"-virtual-address", "v6", virtualAddressOf(group.Spec.InterfaceTemplate.VirtualAddress, false))
	var pending *reconcile.Outcome
	if out != nil {
		pending = out
	}
	if out6 != nil {
		pending = out6
	}

	for i := range children.Items {
		c := &children.Items[i]
		var localV4, localV6 string
		var peerV4, peerV6 []string
		for _, p := range peers[c.Name] {
			if p.V4 != "" {
				peerV4 = append(peerV4, p.V4)
			}
			if p.V6 != "" {
				peerV6 = append(peerV6, p.V6)
			}
		}
		localV4 = c.Spec.V4Address
		localV6 = c.Spec.V6Address

		c.Status.Vrrp.Unicast = cnmv1.VrrpUnicast{
			LocalV4:    localV4,
			PeerV4List: peerV4,
			LocalV6:    localV6,
			PeerV6List: peerV6,
		}
		if handled && !vaddr.pending {
			c.Status.Vrrp.VirtualAddress.V4 = vaddr.value
		}
		if handled6 && !v6addr.pending {
			c.Status.Vrrp.VirtualAddress.V6 = v6addr.value
		}
		if err := k8sutil.PatchStatus(ctx, rc.Client, c); err != nil {
			return nil, err
		}
	}
	return pending, nil
}

// virtualAddressOf extracts the v4 or v6 half of a VirtualAddress template
// field, or nil if that half / the whole field is unset.
func virtualAddressOf(va *cnmv1.VirtualAddress, v4 bool) *cnmv1.AddressValue {
	if va == nil {
		return nil
	}
	if v4 {
		return va.V4
	}
	return va.V6
}
