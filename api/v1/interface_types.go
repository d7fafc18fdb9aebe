package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// InterfaceSpec is both the standalone Interface spec and the per-pod
// template published by an InterfaceGroup.
type InterfaceSpec struct {
	// Device is the host interface name, e.g. "eth1".
	Device string `json:"device"`

	V4Address string `json:"v4Address,omitempty"`
	V6Address string `json:"v6Address,omitempty"`

	// VirtualAddress, if set, is materialized as an IpAddress the way
	// Vrrp.spec.virtualAddress is.
	VirtualAddress *VirtualAddress `json:"virtualAddress,omitempty"`

	// V4SubnetFilter restricts topology derivation to peers whose v4
	// address falls in the same network as this subnet.
	V4SubnetFilter string `json:"v4SubnetFilter,omitempty"`

	// V6SubnetFilter is the v6 analogue of V4SubnetFilter.
	V6SubnetFilter string `json:"v6SubnetFilter,omitempty"`
}

// InterfaceStatus carries the derived topology for this interface.
type InterfaceStatus struct {
	Vrrp VrrpTopology `json:"vrrp,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=interfaces,scope=Namespaced
type Interface struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   InterfaceSpec   `json:"spec,omitempty"`
	Status InterfaceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type InterfaceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Interface `json:"items"`
}

// InterfaceGroupSpec fans an InterfaceGroup out into one Interface per pod
// under InstanceParent, matched by InterfaceName against each pod's
// discovered Crpd.status.instances[*].interfaces.
type InterfaceGroupSpec struct {
	InterfaceTemplate InterfaceSpec `json:"interfaceTemplate"`
	InterfaceName     string        `json:"interfaceName"`
	InstanceParent    *ParentRef    `json:"instanceParent,omitempty"`
}

// InterfaceGroupStatus publishes the ordered set of children this group
// currently owns.
type InterfaceGroupStatus struct {
	InterfaceReferences []string `json:"interfaceReferences,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=interfacegroups,scope=Namespaced
type InterfaceGroup struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   InterfaceGroupSpec   `json:"spec,omitempty"`
	Status InterfaceGroupStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type InterfaceGroupList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []InterfaceGroup `json:"items"`
}
