package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// BgpRouterSpec is both the standalone BgpRouter spec and the per-instance
// template published by a BgpRouterGroup.
type BgpRouterSpec struct {
	ASN       int32  `json:"asn"`
	RouterID  string `json:"routerId,omitempty"`
	V4Address string `json:"v4Address,omitempty"`
	V6Address string `json:"v6Address,omitempty"`
	Interface string `json:"interface,omitempty"`

	AddressFamilies []string `json:"addressFamilies,omitempty"`
	Managed         bool     `json:"managed,omitempty"`

	BgpPeerReferences []string `json:"bgpPeerReferences,omitempty"`

	InstanceParent        *ParentRef            `json:"instanceParent,omitempty"`
	RoutingInstanceParent *LocalObjectReference `json:"routingInstanceParent,omitempty"`
}

// BgpRouterStatus mirrors the effective peer set.
type BgpRouterStatus struct {
	PeerReferences []string `json:"peerReferences,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=bgprouters,scope=Namespaced
type BgpRouter struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   BgpRouterSpec   `json:"spec,omitempty"`
	Status BgpRouterStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type BgpRouterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []BgpRouter `json:"items"`
}

// BgpRouterReference is one entry of a BgpRouterGroup's published status.
type BgpRouterReference struct {
	Name    string `json:"name"`
	LocalV4 string `json:"localV4,omitempty"`
	LocalV6 string `json:"localV6,omitempty"`
}

// BgpRouterGroupSpec fans out one BgpRouter per instance named by
// InstanceParent.
type BgpRouterGroupSpec struct {
	BgpRouterTemplate BgpRouterSpec `json:"bgpRouterTemplate"`
	InstanceParent    *ParentRef    `json:"instanceParent,omitempty"`
}

// BgpRouterGroupStatus publishes the ordered set of children this group
// currently owns.
type BgpRouterGroupStatus struct {
	BgpRouterReferences []BgpRouterReference `json:"bgpRouterReferences,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=bgproutergroups,scope=Namespaced
type BgpRouterGroup struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   BgpRouterGroupSpec   `json:"spec,omitempty"`
	Status BgpRouterGroupStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type BgpRouterGroupList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []BgpRouterGroup `json:"items"`
}
