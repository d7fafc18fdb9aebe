// Package poolmath is the pure arithmetic behind Pool/IpAddress allocation:
// turning a v4/v6 prefix or a routeTarget range into an offset space, and
// running the monotonic-nextAvailable/LIFO-releasedNumbers allocation
// rule spec.md §3/§5 and §8's Pool conservation property require.
//
// The IP<->integer conversion is the same big.Int approach whereabouts'
// pkg/allocate.AssignIP and pkg/iphelpers use, adapted to compute an
// offset space rather than walking every candidate address looking for a
// free one -- Pool/IpAddress never need to skip already-used addresses
// one at a time, because nextAvailable/releasedNumbers already encode
// exactly what's free.
package poolmath

import (
	"fmt"
	"math/big"
	"net"
)

// maxHostbits bounds how large a v4/v6 pool this package will manage: the
// offset space is tracked in an int64, so a pool's host-bit count must fit
// a shiftable int64 range. This is a deliberate scope limit, not an
// oversight.
const maxHostbits = 62

// Bounds is the immutable shape of a Pool's namespace: how many offsets
// it has (MaxSize) and how to turn an offset back into a textual address.
type Bounds struct {
	family   string // "v4" or "v6"
	prefix   *big.Int
	length   int32
	start    int64 // routeTarget only
	maxSize  int64
}

// NewV4Bounds / NewV6Bounds derive Bounds from a Pool's v4/v6 spec. MaxSize
// is defined as 2^hostbits (the count of offsets in the prefix), resolving
// spec.md §9's Open Question explicitly rather than reusing the source's
// bitwise-OR derivation, which overcounts non-aligned prefixes.
func NewV4Bounds(prefix string, length int32) (Bounds, error) {
	return newIPBounds("v4", prefix, length, 32)
}

func NewV6Bounds(prefix string, length int32) (Bounds, error) {
	return newIPBounds("v6", prefix, length, 128)
}

func newIPBounds(family, prefix string, length int32, bits int) (Bounds, error) {
	ip := net.ParseIP(prefix)
	if ip == nil {
		return Bounds{}, fmt.Errorf("invalid %s prefix %q", family, prefix)
	}
	if length < 0 || int(length) > bits {
		return Bounds{}, fmt.Errorf("invalid %s prefix length %d", family, length)
	}
	hostbits := bits - int(length)
	if hostbits > maxHostbits {
		return Bounds{}, fmt.Errorf("pool %s/%d too large: %d host bits exceeds the %d-bit accounting limit", prefix, length, hostbits, maxHostbits)
	}
	return Bounds{
		family:  family,
		prefix:  ipToInt(ip),
		length:  length,
		maxSize: int64(1) << uint(hostbits),
	}, nil
}

// NewRouteTargetBounds derives Bounds from a routeTarget Pool's start/size.
func NewRouteTargetBounds(start, size int64) (Bounds, error) {
	if size <= 0 {
		return Bounds{}, fmt.Errorf("invalid routeTarget size %d", size)
	}
	return Bounds{family: "routeTarget", start: start, maxSize: size}, nil
}

// MaxSize is the pool's offset-space size, to seed Pool.status.maxSize.
func (b Bounds) MaxSize() int64 { return b.maxSize }

// Format renders offset as this pool's textual allocation value:
// "addr/len" for v4/v6, the decimal route-target number for routeTarget.
func (b Bounds) Format(offset int64) (string, error) {
	if offset < 0 || offset >= b.maxSize {
		return "", fmt.Errorf("offset %d out of range [0,%d)", offset, b.maxSize)
	}
	switch b.family {
	case "v4", "v6":
		val := new(big.Int).Add(b.prefix, big.NewInt(offset))
		ip := intToIP(val, b.family == "v6")
		return fmt.Sprintf("%s/%d", ip.String(), b.length), nil
	case "routeTarget":
		return fmt.Sprintf("%d", b.start+offset), nil
	default:
		return "", fmt.Errorf("unknown pool family %q", b.family)
	}
}

func ipToInt(ip net.IP) *big.Int {
	n := new(big.Int)
	if v4 := ip.To4(); v4 != nil {
		n.SetBytes(v4)
		return n
	}
	n.SetBytes(ip.To16())
	return n
}

func intToIP(n *big.Int, v6 bool) net.IP {
	b := n.Bytes()
	size := 4
	if v6 {
		size = 16
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return net.IP(out)
}

// Allocation is the result of running AllocateOffset: the offset consumed
// and the updated bookkeeping to persist onto Pool.status.
type Allocation struct {
	Offset          int64
	NextAvailable   int64
	ReleasedNumbers []int64
}

// AllocateOffset implements spec.md §4.2's IpAddressController rule: take
// the largest released offset if any exist (LIFO over the released set),
// otherwise take nextAvailable and advance it. nextAvailable only ever
// increases; reuse happens exclusively through released.
func AllocateOffset(maxSize, nextAvailable int64, released []int64) (Allocation, error) {
	if len(released) > 0 {
		largest := released[0]
		idx := 0
		for i, v := range released {
			if v > largest {
				largest = v
				idx = i
			}
		}
		rest := make([]int64, 0, len(released)-1)
		rest = append(rest, released[:idx]...)
		rest = append(rest, released[idx+1:]...)
		return Allocation{Offset: largest, NextAvailable: nextAvailable, ReleasedNumbers: rest}, nil
	}
	if nextAvailable >= maxSize {
		return Allocation{}, fmt.Errorf("pool exhausted: nextAvailable %d >= maxSize %d", nextAvailable, maxSize)
	}
	return Allocation{Offset: nextAvailable, NextAvailable: nextAvailable + 1, ReleasedNumbers: released}, nil
}

// ReleaseOffset returns offset to the released set, preserving spec.md's
// conservation invariant: inUse + len(released) + (maxSize-nextAvailable) == maxSize.
func ReleaseOffset(released []int64, offset int64) []int64 {
	out := make([]int64, len(released), len(released)+1)
	copy(out, released)
	return append(out, offset)
}

// ParseOffset recovers the offset that produced a previously-formatted
// "addr/len" (v4/v6) or decimal (routeTarget) value, for IpAddress
// deletion (returning the number to the Pool).
func (b Bounds) ParseOffset(value string) (int64, error) {
	switch b.family {
	case "v4", "v6":
		ip, _, err := net.ParseCIDR(value)
		if err != nil {
			return 0, fmt.Errorf("parsing address %q: %w", value, err)
		}
		val := new(big.Int).Sub(ipToInt(ip), b.prefix)
		if !val.IsInt64() {
			return 0, fmt.Errorf("address %q outside 64-bit accounting range", value)
		}
		return val.Int64(), nil
	case "routeTarget":
		var n int64
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
			return 0, fmt.Errorf("parsing route target %q: %w", value, err)
		}
		return n - b.start, nil
	default:
		return 0, fmt.Errorf("unknown pool family %q", b.family)
	}
}
