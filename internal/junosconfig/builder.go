// Package junosconfig builds the Junos JSON configuration document spec.md
// §4.2/§6 describes: a tree of system/protocols/interfaces/routing-instance
// stanzas marshaled to JSON and pushed over the mTLS gRPC management
// channel via ConfigSet. Field names follow Junos' own JSON-RPC
// configuration schema (the `curly-bracket` set-style config rendered as
// nested objects), not this repository's own CR field names.
package junosconfig

import (
	"encoding/json"

	cnmv1 "github.com/juniper/cnm/api/v1"
)

// Document is the top-level Junos configuration stanza this control plane
// manages. Other stanzas (chassis, class-of-service, …) are left to the
// operator and never touched here, matching spec.md's Non-goals.
type Document struct {
	Configuration Configuration `json:"configuration"`
}

type Configuration struct {
	Protocols  Protocols            `json:"protocols,omitempty"`
	Interfaces []InterfaceStanza    `json:"interfaces,omitempty"`
	RoutingInstances []RoutingInstanceStanza `json:"routing-instances,omitempty"`
}

type Protocols struct {
	BGP *BGP `json:"bgp,omitempty"`
}

type BGP struct {
	Group []BGPGroup `json:"group"`
}

type BGPGroup struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	LocalAddress    string   `json:"local-address,omitempty"`
	PeerAS          int32    `json:"peer-as,omitempty"`
	Family          []string `json:"family,omitempty"`
	Neighbor        []string `json:"neighbor,omitempty"`
}

type InterfaceStanza struct {
	Name string       `json:"name"`
	Unit []UnitStanza `json:"unit"`
}

type UnitStanza struct {
	Name   int32    `json:"name"`
	Family []Family `json:"family"`
}

type Family struct {
	Name    string   `json:"name"`
	Address []string `json:"address"`
}

type RoutingInstanceStanza struct {
	Name               string   `json:"name"`
	RouteDistinguisher string   `json:"route-distinguisher,omitempty"`
	VrfTargetImport    []string `json:"vrf-target-import,omitempty"`
	VrfTargetExport    []string `json:"vrf-target-export,omitempty"`
}

// BuildBgpRouterConfig renders the subset of Junos config a single
// BgpRouter reconcile needs to push: its own BGP group and the interface
// it's configured on. JunosConfigurationController (controllers/junos_
// controller.go) calls this once per managed BgpRouter.
func BuildBgpRouterConfig(router *cnmv1.BgpRouter) (string, error) {
	group := BGPGroup{
		Name:   router.Name,
		Type:   "external",
		PeerAS: router.Spec.ASN,
		Family: router.Spec.AddressFamilies,
	}
	if router.Spec.V4Address != "" {
		group.LocalAddress = router.Spec.V4Address
	} else {
		group.LocalAddress = router.Spec.V6Address
	}
	group.Neighbor = router.Status.PeerReferences

	doc := Document{
		Configuration: Configuration{
			Protocols: Protocols{BGP: &BGP{Group: []BGPGroup{group}}},
		},
	}
	if router.Spec.Interface != "" {
		unit := UnitStanza{Name: 0}
		if router.Spec.V4Address != "" {
			unit.Family = append(unit.Family, Family{Name: "inet", Address: []string{router.Spec.V4Address}})
		}
		if router.Spec.V6Address != "" {
			unit.Family = append(unit.Family, Family{Name: "inet6", Address: []string{router.Spec.V6Address}})
		}
		doc.Configuration.Interfaces = []InterfaceStanza{{Name: router.Spec.Interface, Unit: []UnitStanza{unit}}}
	}
	if router.Spec.RoutingInstanceParent != nil {
		doc.Configuration.RoutingInstances = []RoutingInstanceStanza{{Name: router.Spec.RoutingInstanceParent.Name}}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// SeedSystem is the system-level stanza the per-pod init agent writes
// into its seed config file once at pod start (spec.md §4.5): a login user with a pre-hashed
// password, SSH moved off the default port, and gRPC-over-TLS enabled
// for the management channel this package's own sibling
// (internal/junosclient) later dials.
type SeedSystem struct {
	Login    SeedLogin    `json:"login"`
	Services SeedServices `json:"services"`
}

type SeedLogin struct {
	User []SeedUser `json:"user"`
}

type SeedUser struct {
	Name            string `json:"name"`
	Class           string `json:"class"`
	EncryptedPassword string `json:"encrypted-password"`
}

type SeedServices struct {
	SSH        SeedSSH        `json:"ssh"`
	GRPC       SeedGRPC       `json:"grpc"`
	NETCONF    SeedNetconf    `json:"netconf"`
}

type SeedSSH struct {
	Port int32 `json:"port"`
}

type SeedGRPC struct {
	SSL SeedGRPCSSL `json:"ssl"`
}

type SeedGRPCSSL struct {
	Port                 int32  `json:"port"`
	LocalCertificate     string `json:"local-certificate"`
}

type SeedNetconf struct {
	SSH struct{} `json:"ssh"`
}

// SeedDocument is the top-level document written to /tmp/juniper.conf and
// gzipped to /config/juniper.conf.gz.
type SeedDocument struct {
	Configuration SeedConfiguration `json:"configuration"`
}

type SeedConfiguration struct {
	System SeedSystem `json:"system"`
}

const (
	seedSSHPort     = 24
	seedGRPCSSLPort = 50052
)

// BuildSeedConfig renders the bootstrap Junos configuration for a
// freshly-started cRPD instance: the fixed-seed login user (its password
// already bcrypt-hashed by the caller into crypt form) and the
// ssh/grpc-ssl/netconf service stanzas spec.md §4.5 names, referencing
// certLocalName as the already-written local-certificate identifier.
func BuildSeedConfig(username, encryptedPassword, certLocalName string) (string, error) {
	doc := SeedDocument{
		Configuration: SeedConfiguration{
			System: SeedSystem{
				Login: SeedLogin{
					User: []SeedUser{{Name: username, Class: "super-user", EncryptedPassword: encryptedPassword}},
				},
				Services: SeedServices{
					SSH:     SeedSSH{Port: seedSSHPort},
					GRPC:    SeedGRPC{SSL: SeedGRPCSSL{Port: seedGRPCSSLPort, LocalCertificate: certLocalName}},
					NETCONF: SeedNetconf{},
				},
			},
		},
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
