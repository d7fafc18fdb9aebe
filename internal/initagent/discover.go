package initagent

import (
	"net"

	cnmv1 "github.com/juniper/cnm/api/v1"
)

// linkLocalV6 is fe80::/10, excluded from discovery per spec.md §4.5.
var linkLocalV6 = &net.IPNet{IP: net.ParseIP("fe80::"), Mask: net.CIDRMask(10, 128)}

// DiscoverInterfaces enumerates every non-loopback host network
// interface and records its MAC plus first IPv4/IPv6 address in CIDR
// form, skipping link-local v6 addresses. This is plain net.Interfaces
// enumeration: no pack library exposes a higher-level host-NIC
// discovery API, so the standard library is used directly here.
func DiscoverInterfaces() (map[string]cnmv1.CrpdInterfaceStatus, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	out := make(map[string]cnmv1.CrpdInterfaceStatus)
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			return nil, err
		}
		status := cnmv1.CrpdInterfaceStatus{MAC: iface.HardwareAddr.String()}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipNet.IP.To4()
			if ip4 != nil {
				if status.V4 == "" {
					status.V4 = cidrOf(ip4, ipNet)
				}
				continue
			}
			if linkLocalV6.Contains(ipNet.IP) {
				continue
			}
			if status.V6 == "" {
				status.V6 = cidrOf(ipNet.IP, ipNet)
			}
		}
		out[iface.Name] = status
	}
	return out, nil
}

func cidrOf(ip net.IP, ipNet *net.IPNet) string {
	ones, _ := ipNet.Mask.Size()
	return (&net.IPNet{IP: ip, Mask: net.CIDRMask(ones, len(ip)*8)}).String()
}
