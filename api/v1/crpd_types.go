package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// CrpdInterfaceStatus is one interface discovered by the per-pod init
// agent and reported into the parent Crpd's status.
type CrpdInterfaceStatus struct {
	MAC string `json:"mac,omitempty"`
	V4  string `json:"v4,omitempty"`
	V6  string `json:"v6,omitempty"`
}

// CrpdInstanceStatus is one pod's entry in Crpd.status.instances.
type CrpdInstanceStatus struct {
	UUID       string                         `json:"uuid,omitempty"`
	Interfaces map[string]CrpdInterfaceStatus `json:"interfaces,omitempty"`
}

// CrpdSpec is both the standalone spec and the per-pod template published
// by a CrpdGroup.
type CrpdSpec struct {
	Image           string `json:"image,omitempty"`
	SetupInterfaces bool   `json:"setupInterfaces,omitempty"`
}

// CrpdStatus is populated by the per-pod init agent running in this pod's
// init container; it is the primary data source for InterfaceGroup fan-out.
type CrpdStatus struct {
	Instances map[string]CrpdInstanceStatus `json:"instances,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=crpds,scope=Namespaced
type Crpd struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   CrpdSpec   `json:"spec,omitempty"`
	Status CrpdStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type CrpdList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Crpd `json:"items"`
}

// CrpdGroupSpec declares a replicated set of cRPD pods and the regexes
// used to auto-derive InterfaceGroups from discovered host interfaces.
type CrpdGroupSpec struct {
	Replicas        int32    `json:"replicas"`
	CrpdTemplate    CrpdSpec `json:"crpdTemplate,omitempty"`
	InterfaceGroups []string `json:"interfaceGroups,omitempty"`
}

// CrpdGroupStatefulSetStatus is a trimmed copy of the owned StatefulSet's
// status, republished for visibility without requiring callers to fetch
// the StatefulSet directly.
type CrpdGroupStatefulSetStatus struct {
	Replicas      int32 `json:"replicas,omitempty"`
	ReadyReplicas int32 `json:"readyReplicas,omitempty"`
}

// CrpdGroupStatus aggregates every kind of child this group produces.
type CrpdGroupStatus struct {
	BgpRouterGroupReferences       []string                   `json:"bgpRouterGroupReferences,omitempty"`
	RoutingInstanceGroupReferences []string                   `json:"routingInstanceGroupReferences,omitempty"`
	VrrpGroupReferences            []string                   `json:"vrrpGroupReferences,omitempty"`
	InterfaceGroupReferences       []string                   `json:"interfaceGroupReferences,omitempty"`
	CrpdReferences                 []string                   `json:"crpdReferences,omitempty"`
	StatefulSet                    CrpdGroupStatefulSetStatus `json:"statefulSet,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=crpdgroups,scope=Namespaced
type CrpdGroup struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   CrpdGroupSpec   `json:"spec,omitempty"`
	Status CrpdGroupStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type CrpdGroupList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []CrpdGroup `json:"items"`
}
