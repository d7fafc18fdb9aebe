// Package topology derives VRRP/interface peer groups by subnet match, the
// way pkg/iphelpers.GetIPRange and the CNI range-matching in
// pkg/allocate/allocate.go test an address against a CIDR -- reused here
// not to assign an address but to decide which sibling Interface/Vrrp CRs
// share an L2 segment and therefore must appear in each other's
// status.vrrp.unicast peer lists.
package topology

import (
	"fmt"
	"net"
	"sort"
)

// Member is the subset of an Interface/Vrrp CR's resolved state topology
// derivation needs: its owner name and the addresses it advertises.
type Member struct {
	Name string
	V4   string // CIDR form, e.g. "10.10.0.1/24"; empty if this member has none
	V6   string
}

// Peer is one derived peer, the source of a VrrpTopology's
// unicast.peerV4List/peerV6List entries.
type Peer struct {
	Name string
	V4   string
	V6   string
}

// DerivePeers returns, for each member in members, the other members that
// share its local subnet: the network each member's own CIDR address
// belongs to, the way _examples/original_source's
// controllers/crpd/interface_group.rs derives `Ipv4Net::from_str(addr).
// network()` for every address before comparing. v4Filter/v6Filter, when
// set, are an additional constraint -- a member outside the filter's
// network is excluded from matching on that family entirely -- but the
// local subnet itself always comes from the member's own address, never
// from the filter alone, per spec.md §4.2's "subnet-match v4 against
// v4SubnetFilter (if present) and against the local subnet".
//
// The returned map is keyed by member name. Peer order within each list is
// sorted by name so two controllers computing the same topology concurrently
// always agree on ordering -- without it, status.vrrp.unicast would flap
// between semantically-identical-but-differently-ordered patches forever.
func DerivePeers(members []Member, v4Filter, v6Filter string) (map[string][]Peer, error) {
	var v4FilterNet, v6FilterNet *net.IPNet
	var err error
	if v4Filter != "" {
		if _, v4FilterNet, err = net.ParseCIDR(v4Filter); err != nil {
			return nil, err
		}
	}
	if v6Filter != "" {
		if _, v6FilterNet, err = net.ParseCIDR(v6Filter); err != nil {
			return nil, err
		}
	}

	type resolved struct {
		Member
		v4Subnet string // network() of Member.V4, empty if unset or filtered out
		v6Subnet string
	}
	rs := make([]resolved, 0, len(members))
	for _, m := range members {
		r := resolved{Member: m}
		if m.V4 != "" {
			ip, ipNet, err := net.ParseCIDR(m.V4)
			if err != nil {
				return nil, fmt.Errorf("member %q: parsing v4 address %q: %w", m.Name, m.V4, err)
			}
			if v4FilterNet == nil || v4FilterNet.Contains(ip) {
				r.v4Subnet = ipNet.String()
			}
		}
		if m.V6 != "" {
			ip, ipNet, err := net.ParseCIDR(m.V6)
			if err != nil {
				return nil, fmt.Errorf("member %q: parsing v6 address %q: %w", m.Name, m.V6, err)
			}
			if v6FilterNet == nil || v6FilterNet.Contains(ip) {
				r.v6Subnet = ipNet.String()
			}
		}
		rs = append(rs, r)
	}

	out := make(map[string][]Peer, len(rs))
	for _, self := range rs {
		if self.v4Subnet == "" && self.v6Subnet == "" {
			out[self.Name] = nil
			continue
		}
		var peers []Peer
		for _, other := range rs {
			if other.Name == self.Name {
				continue
			}
			shareV4 := self.v4Subnet != "" && self.v4Subnet == other.v4Subnet
			shareV6 := self.v6Subnet != "" && self.v6Subnet == other.v6Subnet
			if !shareV4 && !shareV6 {
				continue
			}
			peers = append(peers, Peer{Name: other.Name, V4: other.V4, V6: other.V6})
		}
		sort.Slice(peers, func(i, j int) bool { return peers[i].Name < peers[j].Name })
		out[self.Name] = peers
	}
	return out, nil
}
