// Hand-maintained in lieu of controller-gen codegen (no Go toolchain is run
// in this build); shape follows what `controller-gen object` would emit.

package v1

import (
	runtime "k8s.io/apimachinery/pkg/runtime"
)

func (in *ParentRef) DeepCopy() *ParentRef {
	if in == nil {
		return nil
	}
	out := new(ParentRef)
	*out = *in
	return out
}

func (in *AddressValue) DeepCopy() *AddressValue {
	if in == nil {
		return nil
	}
	out := new(AddressValue)
	*out = *in
	if in.PoolRef != nil {
		out.PoolRef = &LocalObjectReference{Name: in.PoolRef.Name}
	}
	return out
}

func (in *VirtualAddress) DeepCopy() *VirtualAddress {
	if in == nil {
		return nil
	}
	out := new(VirtualAddress)
	out.V4 = in.V4.DeepCopy()
	out.V6 = in.V6.DeepCopy()
	return out
}

func (in *VrrpUnicast) DeepCopy() *VrrpUnicast {
	if in == nil {
		return nil
	}
	out := new(VrrpUnicast)
	*out = *in
	out.PeerV4List = append([]string(nil), in.PeerV4List...)
	out.PeerV6List = append([]string(nil), in.PeerV6List...)
	return out
}

func (in *ResolvedVirtualAddress) DeepCopy() *ResolvedVirtualAddress {
	if in == nil {
		return nil
	}
	out := new(ResolvedVirtualAddress)
	*out = *in
	return out
}

func (in *VrrpTopology) DeepCopy() *VrrpTopology {
	if in == nil {
		return nil
	}
	out := new(VrrpTopology)
	out.Unicast = *in.Unicast.DeepCopy()
	out.VirtualAddress = *in.VirtualAddress.DeepCopy()
	return out
}

func (in *InstanceSelector) DeepCopy() *InstanceSelector {
	if in == nil {
		return nil
	}
	out := new(InstanceSelector)
	*out = *in
	if in.LabelSelector != nil {
		out.LabelSelector = make(map[string]string, len(in.LabelSelector))
		for k, v := range in.LabelSelector {
			out.LabelSelector[k] = v
		}
	}
	if in.GroupRef != nil {
		out.GroupRef = &LocalObjectReference{Name: in.GroupRef.Name}
	}
	return out
}

// --- Pool ---

func (in *PoolSpec) DeepCopy() *PoolSpec {
	if in == nil {
		return nil
	}
	out := new(PoolSpec)
	*out = *in
	return out
}

func (in *PoolStatus) DeepCopy() *PoolStatus {
	if in == nil {
		return nil
	}
	out := new(PoolStatus)
	*out = *in
	out.ReleasedNumbers = append([]int64(nil), in.ReleasedNumbers...)
	return out
}

func (in *Pool) DeepCopyInto(out *Pool) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *Pool) DeepCopy() *Pool {
	if in == nil {
		return nil
	}
	out := new(Pool)
	in.DeepCopyInto(out)
	return out
}

func (in *Pool) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *PoolList) DeepCopyInto(out *PoolList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Pool, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *PoolList) DeepCopy() *PoolList {
	if in == nil {
		return nil
	}
	out := new(PoolList)
	in.DeepCopyInto(out)
	return out
}

func (in *PoolList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

// --- IpAddress ---

func (in *IpAddressSpec) DeepCopy() *IpAddressSpec {
	if in == nil {
		return nil
	}
	out := new(IpAddressSpec)
	*out = *in
	return out
}

func (in *IpAddressStatus) DeepCopy() *IpAddressStatus {
	if in == nil {
		return nil
	}
	out := new(IpAddressStatus)
	*out = *in
	return out
}

func (in *IpAddress) DeepCopyInto(out *IpAddress) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *IpAddress) DeepCopy() *IpAddress {
	if in == nil {
		return nil
	}
	out := new(IpAddress)
	in.DeepCopyInto(out)
	return out
}

func (in *IpAddress) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *IpAddressList) DeepCopyInto(out *IpAddressList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]IpAddress, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *IpAddressList) DeepCopy() *IpAddressList {
	if in == nil {
		return nil
	}
	out := new(IpAddressList)
	in.DeepCopyInto(out)
	return out
}

func (in *IpAddressList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

// --- BgpRouter / BgpRouterGroup ---

func (in *BgpRouterSpec) DeepCopy() *BgpRouterSpec {
	if in == nil {
		return nil
	}
	out := new(BgpRouterSpec)
	*out = *in
	out.AddressFamilies = append([]string(nil), in.AddressFamilies...)
	out.BgpPeerReferences = append([]string(nil), in.BgpPeerReferences...)
	out.InstanceParent = in.InstanceParent.DeepCopy()
	if in.RoutingInstanceParent != nil {
		out.RoutingInstanceParent = &LocalObjectReference{Name: in.RoutingInstanceParent.Name}
	}
	return out
}

func (in *BgpRouterStatus) DeepCopy() *BgpRouterStatus {
	if in == nil {
		return nil
	}
	out := new(BgpRouterStatus)
	*out = *in
	out.PeerReferences = append([]string(nil), in.PeerReferences...)
	return out
}

func (in *BgpRouter) DeepCopyInto(out *BgpRouter) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *BgpRouter) DeepCopy() *BgpRouter {
	if in == nil {
		return nil
	}
	out := new(BgpRouter)
	in.DeepCopyInto(out)
	return out
}

func (in *BgpRouter) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *BgpRouterList) DeepCopyInto(out *BgpRouterList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]BgpRouter, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *BgpRouterList) DeepCopy() *BgpRouterList {
	if in == nil {
		return nil
	}
	out := new(BgpRouterList)
	in.DeepCopyInto(out)
	return out
}

func (in *BgpRouterList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *BgpRouterReference) DeepCopy() *BgpRouterReference {
	if in == nil {
		return nil
	}
	out := new(BgpRouterReference)
	*out = *in
	return out
}

func (in *BgpRouterGroupSpec) DeepCopy() *BgpRouterGroupSpec {
	if in == nil {
		return nil
	}
	out := new(BgpRouterGroupSpec)
	out.BgpRouterTemplate = *in.BgpRouterTemplate.DeepCopy()
	out.InstanceParent = in.InstanceParent.DeepCopy()
	return out
}

func (in *BgpRouterGroupStatus) DeepCopy() *BgpRouterGroupStatus {
	if in == nil {
		return nil
	}
	out := new(BgpRouterGroupStatus)
	if in.BgpRouterReferences != nil {
		out.BgpRouterReferences = make([]BgpRouterReference, len(in.BgpRouterReferences))
		copy(out.BgpRouterReferences, in.BgpRouterReferences)
	}
	return out
}

func (in *BgpRouterGroup) DeepCopyInto(out *BgpRouterGroup) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *BgpRouterGroup) DeepCopy() *BgpRouterGroup {
	if in == nil {
		return nil
	}
	out := new(BgpRouterGroup)
	in.DeepCopyInto(out)
	return out
}

func (in *BgpRouterGroup) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *BgpRouterGroupList) DeepCopyInto(out *BgpRouterGroupList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]BgpRouterGroup, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *BgpRouterGroupList) DeepCopy() *BgpRouterGroupList {
	if in == nil {
		return nil
	}
	out := new(BgpRouterGroupList)
	in.DeepCopyInto(out)
	return out
}

func (in *BgpRouterGroupList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

// --- Interface / InterfaceGroup ---

func (in *InterfaceSpec) DeepCopy() *InterfaceSpec {
	if in == nil {
		return nil
	}
	out := new(InterfaceSpec)
	*out = *in
	out.VirtualAddress = in.VirtualAddress.DeepCopy()
	return out
}

func (in *InterfaceStatus) DeepCopy() *InterfaceStatus {
	if in == nil {
		return nil
	}
	out := new(InterfaceStatus)
	out.Vrrp = *in.Vrrp.DeepCopy()
	return out
}

func (in *Interface) DeepCopyInto(out *Interface) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *Interface) DeepCopy() *Interface {
	if in == nil {
		return nil
	}
	out := new(Interface)
	in.DeepCopyInto(out)
	return out
}

func (in *Interface) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *InterfaceList) DeepCopyInto(out *InterfaceList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Interface, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *InterfaceList) DeepCopy() *InterfaceList {
	if in == nil {
		return nil
	}
	out := new(InterfaceList)
	in.DeepCopyInto(out)
	return out
}

func (in *InterfaceList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *InterfaceGroupSpec) DeepCopy() *InterfaceGroupSpec {
	if in == nil {
		return nil
	}
	out := new(InterfaceGroupSpec)
	out.InterfaceTemplate = *in.InterfaceTemplate.DeepCopy()
	out.InterfaceName = in.InterfaceName
	out.InstanceParent = in.InstanceParent.DeepCopy()
	return out
}

func (in *InterfaceGroupStatus) DeepCopy() *InterfaceGroupStatus {
	if in == nil {
		return nil
	}
	out := new(InterfaceGroupStatus)
	out.InterfaceReferences = append([]string(nil), in.InterfaceReferences...)
	return out
}

func (in *InterfaceGroup) DeepCopyInto(out *InterfaceGroup) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *InterfaceGroup) DeepCopy() *InterfaceGroup {
	if in == nil {
		return nil
	}
	out := new(InterfaceGroup)
	in.DeepCopyInto(out)
	return out
}

func (in *InterfaceGroup) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *InterfaceGroupList) DeepCopyInto(out *InterfaceGroupList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]InterfaceGroup, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *InterfaceGroupList) DeepCopy() *InterfaceGroupList {
	if in == nil {
		return nil
	}
	out := new(InterfaceGroupList)
	in.DeepCopyInto(out)
	return out
}

func (in *InterfaceGroupList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

// --- Vrrp / VrrpGroup ---

func (in *VrrpSpec) DeepCopy() *VrrpSpec {
	if in == nil {
		return nil
	}
	out := new(VrrpSpec)
	*out = *in
	out.VirtualAddress = in.VirtualAddress.DeepCopy()
	return out
}

func (in *VrrpStatus) DeepCopy() *VrrpStatus {
	if in == nil {
		return nil
	}
	out := new(VrrpStatus)
	out.Vrrp = *in.Vrrp.DeepCopy()
	return out
}

func (in *Vrrp) DeepCopyInto(out *Vrrp) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *Vrrp) DeepCopy() *Vrrp {
	if in == nil {
		return nil
	}
	out := new(Vrrp)
	in.DeepCopyInto(out)
	return out
}

func (in *Vrrp) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *VrrpList) DeepCopyInto(out *VrrpList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Vrrp, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *VrrpList) DeepCopy() *VrrpList {
	if in == nil {
		return nil
	}
	out := new(VrrpList)
	in.DeepCopyInto(out)
	return out
}

func (in *VrrpList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *VrrpGroupSpec) DeepCopy() *VrrpGroupSpec {
	if in == nil {
		return nil
	}
	out := new(VrrpGroupSpec)
	out.VrrpTemplate = *in.VrrpTemplate.DeepCopy()
	out.InterfaceSelector = *in.InterfaceSelector.DeepCopy()
	return out
}

func (in *VrrpGroupStatus) DeepCopy() *VrrpGroupStatus {
	if in == nil {
		return nil
	}
	out := new(VrrpGroupStatus)
	out.VrrpReferences = append([]string(nil), in.VrrpReferences...)
	return out
}

func (in *VrrpGroup) DeepCopyInto(out *VrrpGroup) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *VrrpGroup) DeepCopy() *VrrpGroup {
	if in == nil {
		return nil
	}
	out := new(VrrpGroup)
	in.DeepCopyInto(out)
	return out
}

func (in *VrrpGroup) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *VrrpGroupList) DeepCopyInto(out *VrrpGroupList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]VrrpGroup, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *VrrpGroupList) DeepCopy() *VrrpGroupList {
	if in == nil {
		return nil
	}
	out := new(VrrpGroupList)
	in.DeepCopyInto(out)
	return out
}

func (in *VrrpGroupList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

// --- RoutingInstance / RoutingInstanceGroup ---

func (in *RoutingInstanceSpec) DeepCopy() *RoutingInstanceSpec {
	if in == nil {
		return nil
	}
	out := new(RoutingInstanceSpec)
	*out = *in
	out.VrfTargetImport = append([]string(nil), in.VrfTargetImport...)
	out.VrfTargetExport = append([]string(nil), in.VrfTargetExport...)
	out.InstanceParent = in.InstanceParent.DeepCopy()
	return out
}

func (in *RoutingInstanceStatus) DeepCopy() *RoutingInstanceStatus {
	if in == nil {
		return nil
	}
	out := new(RoutingInstanceStatus)
	*out = *in
	return out
}

func (in *RoutingInstance) DeepCopyInto(out *RoutingInstance) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *RoutingInstance) DeepCopy() *RoutingInstance {
	if in == nil {
		return nil
	}
	out := new(RoutingInstance)
	in.DeepCopyInto(out)
	return out
}

func (in *RoutingInstance) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *RoutingInstanceList) DeepCopyInto(out *RoutingInstanceList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]RoutingInstance, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *RoutingInstanceList) DeepCopy() *RoutingInstanceList {
	if in == nil {
		return nil
	}
	out := new(RoutingInstanceList)
	in.DeepCopyInto(out)
	return out
}

func (in *RoutingInstanceList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *RoutingInstanceGroupSpec) DeepCopy() *RoutingInstanceGroupSpec {
	if in == nil {
		return nil
	}
	out := new(RoutingInstanceGroupSpec)
	out.RoutingInstanceTemplate = *in.RoutingInstanceTemplate.DeepCopy()
	out.InstanceParent = in.InstanceParent.DeepCopy()
	return out
}

func (in *RoutingInstanceGroupStatus) DeepCopy() *RoutingInstanceGroupStatus {
	if in == nil {
		return nil
	}
	out := new(RoutingInstanceGroupStatus)
	out.RoutingInstanceReferences = append([]string(nil), in.RoutingInstanceReferences...)
	return out
}

func (in *RoutingInstanceGroup) DeepCopyInto(out *RoutingInstanceGroup) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *RoutingInstanceGroup) DeepCopy() *RoutingInstanceGroup {
	if in == nil {
		return nil
	}
	out := new(RoutingInstanceGroup)
	in.DeepCopyInto(out)
	return out
}

func (in *RoutingInstanceGroup) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *RoutingInstanceGroupList) DeepCopyInto(out *RoutingInstanceGroupList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]RoutingInstanceGroup, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *RoutingInstanceGroupList) DeepCopy() *RoutingInstanceGroupList {
	if in == nil {
		return nil
	}
	out := new(RoutingInstanceGroupList)
	in.DeepCopyInto(out)
	return out
}

func (in *RoutingInstanceGroupList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

// --- VirtualNetwork ---

func (in *VirtualNetworkSpec) DeepCopy() *VirtualNetworkSpec {
	if in == nil {
		return nil
	}
	out := new(VirtualNetworkSpec)
	out.RoutingInstanceRefs = append([]string(nil), in.RoutingInstanceRefs...)
	return out
}

func (in *VirtualNetworkStatus) DeepCopy() *VirtualNetworkStatus {
	if in == nil {
		return nil
	}
	out := new(VirtualNetworkStatus)
	*out = *in
	return out
}

func (in *VirtualNetwork) DeepCopyInto(out *VirtualNetwork) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *VirtualNetwork) DeepCopy() *VirtualNetwork {
	if in == nil {
		return nil
	}
	out := new(VirtualNetwork)
	in.DeepCopyInto(out)
	return out
}

func (in *VirtualNetwork) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *VirtualNetworkList) DeepCopyInto(out *VirtualNetworkList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]VirtualNetwork, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *VirtualNetworkList) DeepCopy() *VirtualNetworkList {
	if in == nil {
		return nil
	}
	out := new(VirtualNetworkList)
	in.DeepCopyInto(out)
	return out
}

func (in *VirtualNetworkList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

// --- Crpd / CrpdGroup ---

func (in *CrpdInterfaceStatus) DeepCopy() *CrpdInterfaceStatus {
	if in == nil {
		return nil
	}
	out := new(CrpdInterfaceStatus)
	*out = *in
	return out
}

func (in *CrpdInstanceStatus) DeepCopy() *CrpdInstanceStatus {
	if in == nil {
		return nil
	}
	out := new(CrpdInstanceStatus)
	out.UUID = in.UUID
	if in.Interfaces != nil {
		out.Interfaces = make(map[string]CrpdInterfaceStatus, len(in.Interfaces))
		for k, v := range in.Interfaces {
			out.Interfaces[k] = v
		}
	}
	return out
}

func (in *CrpdSpec) DeepCopy() *CrpdSpec {
	if in == nil {
		return nil
	}
	out := new(CrpdSpec)
	*out = *in
	return out
}

func (in *CrpdStatus) DeepCopy() *CrpdStatus {
	if in == nil {
		return nil
	}
	out := new(CrpdStatus)
	if in.Instances != nil {
		out.Instances = make(map[string]CrpdInstanceStatus, len(in.Instances))
		for k, v := range in.Instances {
			out.Instances[k] = *v.DeepCopy()
		}
	}
	return out
}

func (in *Crpd) DeepCopyInto(out *Crpd) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *Crpd) DeepCopy() *Crpd {
	if in == nil {
		return nil
	}
	out := new(Crpd)
	in.DeepCopyInto(out)
	return out
}

func (in *Crpd) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *CrpdList) DeepCopyInto(out *CrpdList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Crpd, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *CrpdList) DeepCopy() *CrpdList {
	if in == nil {
		return nil
	}
	out := new(CrpdList)
	in.DeepCopyInto(out)
	return out
}

func (in *CrpdList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *CrpdGroupSpec) DeepCopy() *CrpdGroupSpec {
	if in == nil {
		return nil
	}
	out := new(CrpdGroupSpec)
	*out = *in
	out.CrpdTemplate = *in.CrpdTemplate.DeepCopy()
	out.InterfaceGroups = append([]string(nil), in.InterfaceGroups...)
	return out
}

func (in *CrpdGroupStatus) DeepCopy() *CrpdGroupStatus {
	if in == nil {
		return nil
	}
	out := new(CrpdGroupStatus)
	out.BgpRouterGroupReferences = append([]string(nil), in.BgpRouterGroupReferences...)
	out.RoutingInstanceGroupReferences = append([]string(nil), in.RoutingInstanceGroupReferences...)
	out.VrrpGroupReferences = append([]string(nil), in.VrrpGroupReferences...)
	out.InterfaceGroupReferences = append([]string(nil), in.InterfaceGroupReferences...)
	out.CrpdReferences = append([]string(nil), in.CrpdReferences...)
	out.StatefulSet = in.StatefulSet
	return out
}

func (in *CrpdGroup) DeepCopyInto(out *CrpdGroup) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *in.Spec.DeepCopy()
	out.Status = *in.Status.DeepCopy()
}

func (in *CrpdGroup) DeepCopy() *CrpdGroup {
	if in == nil {
		return nil
	}
	out := new(CrpdGroup)
	in.DeepCopyInto(out)
	return out
}

func (in *CrpdGroup) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func (in *CrpdGroupList) DeepCopyInto(out *CrpdGroupList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]CrpdGroup, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *CrpdGroupList) DeepCopy() *CrpdGroupList {
	if in == nil {
		return nil
	}
	out := new(CrpdGroupList)
	in.DeepCopyInto(out)
	return out
}

func (in *CrpdGroupList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}
