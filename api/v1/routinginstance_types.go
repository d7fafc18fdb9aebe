package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// RoutingInstanceSpec is both the standalone spec and the per-instance
// template published by a RoutingInstanceGroup.
type RoutingInstanceSpec struct {
	RouteDistinguisher string     `json:"routeDistinguisher,omitempty"`
	VrfTargetImport    []string   `json:"vrfTargetImport,omitempty"`
	VrfTargetExport    []string   `json:"vrfTargetExport,omitempty"`
	InstanceParent     *ParentRef `json:"instanceParent,omitempty"`
}

// RoutingInstanceStatus reports whether the instance has been accepted by
// the owning Crpd.
type RoutingInstanceStatus struct {
	Ready bool `json:"ready,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=routinginstances,scope=Namespaced
type RoutingInstance struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   RoutingInstanceSpec   `json:"spec,omitempty"`
	Status RoutingInstanceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type RoutingInstanceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []RoutingInstance `json:"items"`
}

// RoutingInstanceGroupSpec fans a RoutingInstance out over every instance
// named by InstanceParent.
type RoutingInstanceGroupSpec struct {
	RoutingInstanceTemplate RoutingInstanceSpec `json:"routingInstanceTemplate"`
	InstanceParent          *ParentRef          `json:"instanceParent,omitempty"`
}

// RoutingInstanceGroupStatus publishes the ordered set of children this
// group currently owns.
type RoutingInstanceGroupStatus struct {
	RoutingInstanceReferences []string `json:"routingInstanceReferences,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=routinginstancegroups,scope=Namespaced
type RoutingInstanceGroup struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   RoutingInstanceGroupSpec   `json:"spec,omitempty"`
	Status RoutingInstanceGroupStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type RoutingInstanceGroupList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []RoutingInstanceGroup `json:"items"`
}

// VirtualNetworkSpec groups a set of RoutingInstances under one namespacing
// handle. spec.md's CRD table lists virtualnetworks without elaborating its
// behavior further; see DESIGN.md's Open Question decisions.
type VirtualNetworkSpec struct {
	RoutingInstanceRefs []string `json:"routingInstanceRefs,omitempty"`
}

// VirtualNetworkStatus reports whether every referenced RoutingInstance is ready.
type VirtualNetworkStatus struct {
	Ready bool `json:"ready,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=virtualnetworks,scope=Namespaced
type VirtualNetwork struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   VirtualNetworkSpec   `json:"spec,omitempty"`
	Status VirtualNetworkStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type VirtualNetworkList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []VirtualNetwork `json:"items"`
}
