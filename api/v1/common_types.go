package v1

// LocalObjectReference points at another CR of a known kind in the same
// namespace. Unlike corev1.LocalObjectReference it carries no Kind field;
// callers know the kind from context (the field it's used in).
type LocalObjectReference struct {
	Name string `json:"name"`
}

// ParentRef points at a parent instance or instance-group CR, possibly of
// a different kind (e.g. a BgpRouterGroup's instanceParent pointing at a
// CrpdGroup). Type is one of the InstanceType* constants.
type ParentRef struct {
	Type      string `json:"type"`
	Reference string `json:"reference"`
}

// AddressValue is either a literal textual address or a reference to a
// Pool-backed IpAddress that must be materialized and resolved.
type AddressValue struct {
	Literal string                `json:"literal,omitempty"`
	PoolRef *LocalObjectReference `json:"poolRef,omitempty"`
}

// IsZero reports whether neither a literal value nor a pool reference was set.
func (a *AddressValue) IsZero() bool {
	return a == nil || (a.Literal == "" && a.PoolRef == nil)
}

// VirtualAddress carries the v4/v6 virtual address declared by a Vrrp or a
// VrrpGroup/InterfaceGroup template, each independently either literal or
// pool-backed.
type VirtualAddress struct {
	V4 *AddressValue `json:"v4,omitempty"`
	V6 *AddressValue `json:"v6,omitempty"`
}

// VrrpUnicast is the derived unicast peer list for one interface or Vrrp
// instance, computed by subnet-matching against its siblings.
type VrrpUnicast struct {
	LocalV4    string   `json:"localV4,omitempty"`
	PeerV4List []string `json:"peerV4List,omitempty"`
	LocalV6    string   `json:"localV6,omitempty"`
	PeerV6List []string `json:"peerV6List,omitempty"`
}

// ResolvedVirtualAddress is the fully-resolved textual form of a
// VirtualAddress, once any PoolRef has produced a non-empty IpAddress.
type ResolvedVirtualAddress struct {
	V4 string `json:"v4,omitempty"`
	V6 string `json:"v6,omitempty"`
}

// VrrpTopology is written into Interface.status.vrrp and Vrrp.status.vrrp
// by the topology derivation shared by InterfaceGroupController and
// VrrpGroupController.
type VrrpTopology struct {
	Unicast        VrrpUnicast            `json:"unicast,omitempty"`
	VirtualAddress ResolvedVirtualAddress `json:"virtualAddress,omitempty"`
}

// InstanceSelector names how a VrrpGroup (or similar) resolves the set of
// Interfaces it fans out over: exactly one of LabelSelector, GroupRef, or
// Literal is set.
type InstanceSelector struct {
	LabelSelector map[string]string     `json:"labelSelector,omitempty"`
	GroupRef      *LocalObjectReference `json:"groupRef,omitempty"`
	Literal       string                `json:"literal,omitempty"`
}
