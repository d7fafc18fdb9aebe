// Package crdinstall installs the thirteen CustomResourceDefinitions
// spec.md §6 names at controller startup, the way a self-contained
// operator binary bootstraps its own API surface instead of relying on
// a separate `kubectl apply -f config/crd` step. Schemas are published
// with preserveUnknownFields so the open-api schema enforcement itself
// stays out of scope (spec.md derives the data model in §3, but
// generating a full structural OpenAPIV3Schema from the Go types is
// controller-gen's job, not a runtime concern this package takes on).
package crdinstall

import (
	"context"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/k8sutil"
)

// resource names one CRD: its plural/singular/kind names.
type resource struct {
	plural, singular, kind string
}

var resources = []resource{
	{"pools", "pool", "Pool"},
	{"ipaddresses", "ipaddress", "IpAddress"},
	{"bgprouters", "bgprouter", "BgpRouter"},
	{"bgproutergroups", "bgproutergroup", "BgpRouterGroup"},
	{"interfaces", "interface", "Interface"},
	{"interfacegroups", "interfacegroup", "InterfaceGroup"},
	{"vrrps", "vrrp", "Vrrp"},
	{"vrrpgroups", "vrrpgroup", "VrrpGroup"},
	{"routinginstances", "routinginstance", "RoutingInstance"},
	{"routinginstancegroups", "routinginstancegroup", "RoutingInstanceGroup"},
	{"virtualnetworks", "virtualnetwork", "VirtualNetwork"},
	{"crpds", "crpd", "Crpd"},
	{"crpdgroups", "crpdgroup", "CrpdGroup"},
}

// Install creates every CRD in resources, if not already present. Each
// is namespaced, single-version, with a status subresource, matching
// spec.md §6's "each is installed as a CustomResourceDefinition ... all
// namespaced".
func Install(ctx context.Context, c client.Client) error {
	for _, r := range resources {
		crd := build(r)
		if err := k8sutil.Create(ctx, c, crd); err != nil {
			return err
		}
	}
	return nil
}

func build(r resource) *apiextensionsv1.CustomResourceDefinition {
	name := r.plural + "." + cnmv1.GroupName
	return &apiextensionsv1.CustomResourceDefinition{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: cnmv1.GroupName,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Plural:   r.plural,
				Singular: r.singular,
				Kind:     r.kind,
				ListKind: r.kind + "List",
			},
			Scope: apiextensionsv1.NamespaceScoped,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{
				{
					Name:    cnmv1.GroupVersion,
					Served:  true,
					Storage: true,
					Schema: &apiextensionsv1.CustomResourceValidation{
						OpenAPIV3Schema: &apiextensionsv1.JSONSchemaProps{
							Type:                   "object",
							XPreserveUnknownFields: boolPtr(true),
						},
					},
					Subresources: &apiextensionsv1.CustomResourceSubresources{
						Status: &apiextensionsv1.CustomResourceSubresourceStatus{},
					},
				},
			},
		},
	}
}

func boolPtr(b bool) *bool { return &b }
