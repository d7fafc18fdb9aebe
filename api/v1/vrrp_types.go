package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// VrrpSpec is both the standalone Vrrp spec and the per-interface template
// published by a VrrpGroup.
type VrrpSpec struct {
	Priority       int32           `json:"priority,omitempty"`
	VirtualAddress *VirtualAddress `json:"virtualAddress,omitempty"`
	V4SubnetFilter string          `json:"v4SubnetFilter,omitempty"`
	V6SubnetFilter string          `json:"v6SubnetFilter,omitempty"`
}

// VrrpStatus carries the derived topology for this Vrrp instance.
type VrrpStatus struct {
	Vrrp VrrpTopology `json:"vrrp,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=vrrps,scope=Namespaced
type Vrrp struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   VrrpSpec   `json:"spec,omitempty"`
	Status VrrpStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type VrrpList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Vrrp `json:"items"`
}

// VrrpGroupSpec fans a Vrrp out over every Interface matched by
// InterfaceSelector.
type VrrpGroupSpec struct {
	VrrpTemplate      VrrpSpec         `json:"vrrpTemplate"`
	InterfaceSelector InstanceSelector `json:"interfaceSelector"`
}

// VrrpGroupStatus publishes the ordered set of children this group
// currently owns.
type VrrpGroupStatus struct {
	VrrpReferences []string `json:"vrrpReferences,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=vrrpgroups,scope=Namespaced
type VrrpGroup struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   VrrpGroupSpec   `json:"spec,omitempty"`
	Status VrrpGroupStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type VrrpGroupList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []VrrpGroup `json:"items"`
}
