package types

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net/netip"
	"strings"
)

// ErrIP is returned when a string cannot be parsed as an IP value.
var ErrIP = errors.New("error parsing ip value")

// An IPAddr is an IPv4 or IPv6 address or range represented in CIDR notation.
type IPAddr netip.Prefix

// ParseIPAddr converts a string into an IPAddr. A bare address is treated as
// a single-address range.
func ParseIPAddr(s string) (IPAddr, error) {
	// IPv4-embedded IPv6 addresses in dotted notation are not valid Cedar ips.
	if strings.Count(s, ":") >= 2 && strings.Count(s, ".") >= 2 {
		return IPAddr{}, fmt.Errorf("%w: cannot parse IPv4 embedded in IPv6 using dotted notation", ErrIP)
	} else if prefix, err := netip.ParsePrefix(s); err == nil {
		return IPAddr(prefix), nil
	} else if addr, err := netip.ParseAddr(s); err == nil {
		return IPAddr(netip.PrefixFrom(addr, addr.BitLen())), nil
	} else {
		return IPAddr{}, fmt.Errorf("%w: error parsing ip %q", ErrIP, s)
	}
}

// Prefix returns the IPAddr as a netip.Prefix.
func (v IPAddr) Prefix() netip.Prefix {
	return netip.Prefix(v)
}

// Addr returns the address part of the IPAddr.
func (v IPAddr) Addr() netip.Addr {
	return netip.Prefix(v).Addr()
}

// Equal returns true if the input represents the same IPAddr.
func (v IPAddr) Equal(bi Value) bool {
	b, ok := bi.(IPAddr)
	return ok && v == b
}

// String produces a string representation of the IPAddr, e.g. `192.168.0.42`
// for a single address or `192.168.0.0/16` for a range.
func (v IPAddr) String() string {
	if v.Prefix().Bits() == v.Addr().BitLen() {
		return v.Addr().String()
	}
	return v.Prefix().String()
}

// MarshalCedar produces a valid MarshalCedar language representation of the IPAddr, e.g. `ip("192.168.0.42")`.
func (v IPAddr) MarshalCedar() []byte {
	return []byte(`ip("` + v.String() + `")`)
}

func (v IPAddr) Hash() uint64 {
	h := fnv.New64()
	_, _ = h.Write([]byte(v.String()))
	return h.Sum64()
}

// UnmarshalJSON parses a JSON-encoded IPAddr, in either the implicit
// `"192.168.0.42"` form or the explicit `{"__extn":{"fn":"ip","arg":"192.168.0.42"}}` form.
func (v *IPAddr) UnmarshalJSON(b []byte) error {
	arg, err := unmarshalExtensionArg(b, "ip")
	if err != nil {
		return err
	}
	a, err := ParseIPAddr(arg)
	if err != nil {
		return err
	}
	*v = a
	return nil
}

// MarshalJSON marshals the IPAddr into JSON using the explicit form.
func (v IPAddr) MarshalJSON() ([]byte, error) {
	return marshalExtensionValue("ip", v.String())
}
