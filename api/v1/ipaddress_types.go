package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AddressFamily is the address family an IpAddress is allocated from.
type AddressFamily string

const (
	AddressFamilyV4 AddressFamily = "v4"
	AddressFamilyV6 AddressFamily = "v6"
)

// IpAddressSpec names the Pool an IpAddress draws its value from.
type IpAddressSpec struct {
	Pool   LocalObjectReference `json:"pool"`
	Family AddressFamily        `json:"family"`
}

// IpAddressStatus carries the resolved allocation. An empty Address means
// allocation is pending or failed.
type IpAddressStatus struct {
	// Address is "addr/len", e.g. "10.10.0.0/24".
	Address string `json:"address,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=ipaddresses,scope=Namespaced
type IpAddress struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   IpAddressSpec   `json:"spec,omitempty"`
	Status IpAddressStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type IpAddressList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []IpAddress `json:"items"`
}
