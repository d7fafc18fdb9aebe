// Package v1 contains the cnm.juniper.net/v1 API group: the custom
// resources the reconciliation engine watches and derives.
package v1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

const (
	// GroupName is the API group served by this package's CRDs.
	GroupName = "cnm.juniper.net"
	// GroupVersion is the API version served by this package's CRDs.
	GroupVersion = "v1"
)

var (
	// SchemeGroupVersion is the group/version used for all objects in this package.
	SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: GroupVersion}

	// SchemeBuilder collects the AddToScheme funcs for every type in this package.
	SchemeBuilder = &scheme.Builder{GroupVersion: SchemeGroupVersion}

	// AddToScheme registers every type in this package with a runtime.Scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)

func init() {
	SchemeBuilder.Register(
		&Pool{}, &PoolList{},
		&IpAddress{}, &IpAddressList{},
		&BgpRouter{}, &BgpRouterList{},
		&BgpRouterGroup{}, &BgpRouterGroupList{},
		&Interface{}, &InterfaceList{},
		&InterfaceGroup{}, &InterfaceGroupList{},
		&Vrrp{}, &VrrpList{},
		&VrrpGroup{}, &VrrpGroupList{},
		&RoutingInstance{}, &RoutingInstanceList{},
		&RoutingInstanceGroup{}, &RoutingInstanceGroupList{},
		&VirtualNetwork{}, &VirtualNetworkList{},
		&Crpd{}, &CrpdList{},
		&CrpdGroup{}, &CrpdGroupList{},
	)
}
