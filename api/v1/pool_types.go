package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PoolFamily is the variant tag of a Pool.
type PoolFamily string

const (
	PoolFamilyV4          PoolFamily = "v4"
	PoolFamilyV6          PoolFamily = "v6"
	PoolFamilyRouteTarget PoolFamily = "routeTarget"
)

// PoolSpec declares an allocatable resource space. Exactly the fields for
// Family are meaningful; the rest are ignored.
type PoolSpec struct {
	Family PoolFamily `json:"family"`

	// Prefix and Length describe a v4/v6 namespace, e.g. prefix
	// "10.10.0.0" length 24.
	Prefix string `json:"prefix,omitempty"`
	Length int32  `json:"length,omitempty"`

	// Start and Size describe a routeTarget namespace as a starting
	// integer and a count.
	Start int64 `json:"start,omitempty"`
	Size  int64 `json:"size,omitempty"`
}

// PoolStatus holds the allocator's bookkeeping counters. Only
// PoolController and IpAddressController write this; everything else
// treats it as read-only output. See the Pool invariant in spec.md §3:
// inUse + len(releasedNumbers) + (maxSize - nextAvailable) == maxSize.
type PoolStatus struct {
	MaxSize         int64   `json:"maxSize,omitempty"`
	NextAvailable   int64   `json:"nextAvailable,omitempty"`
	InUse           int64   `json:"inUse,omitempty"`
	ReleasedNumbers []int64 `json:"releasedNumbers,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=pools,scope=Namespaced
type Pool struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PoolSpec   `json:"spec,omitempty"`
	Status PoolStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type PoolList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Pool `json:"items"`
}
