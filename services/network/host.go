//go:build !rp2040 && !rp2350

package network

import "net"

// HostAddress returns the first non-loopback IPv4 address of the machine,
// or NotConnected.
func HostAddress() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return NotConnected
	}
	for _, ifc := range ifaces {
		if ifc.Flags&net.FlagUp == 0 || ifc.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := ifc.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			if ipn, ok := a.(*net.IPNet); ok {
				if ip4 := ipn.IP.To4(); ip4 != nil {
					return ip4.String()
				}
			}
		}
	}
	return NotConnected
}
