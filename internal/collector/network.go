package collector

import (
	"context"
	"net"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/errors"
	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// NetworkStats reports host-wide I/O counters, per-interface addresses and
// state, and the number of open inet sockets. Socket enumeration needing
// more privilege than we have degrades to a count of -1.
func (c *Collector) NetworkStats(ctx context.Context) (*NetworkStats, error) {
	counters, err := gopsnet.IOCountersWithContext(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "Reading network counters failed")
	}

	stats := &NetworkStats{
		Interfaces: make(map[string]InterfaceInfo),
	}
	if len(counters) > 0 {
		stats.GlobalStats = NetIOCounters{
			BytesSent:   counters[0].BytesSent,
			BytesRecv:   counters[0].BytesRecv,
			PacketsSent: counters[0].PacketsSent,
			PacketsRecv: counters[0].PacketsRecv,
			Errin:       counters[0].Errin,
			Errout:      counters[0].Errout,
			Dropin:      counters[0].Dropin,
			Dropout:     counters[0].Dropout,
		}
	}

	ifaces, err := gopsnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Listing network interfaces failed")
	}
	for _, iface := range ifaces {
		info := InterfaceInfo{
			IsUp:      hasFlag(iface.Flags, "up"),
			Addresses: make([]InterfaceAddress, 0, len(iface.Addrs)),
		}
		for _, addr := range iface.Addrs {
			info.Addresses = append(info.Addresses, parseInterfaceAddr(addr.Addr))
		}
		stats.Interfaces[iface.Name] = info
	}

	stats.ConnectionsCount = c.connectionCount(ctx)

	return stats, nil
}

// connectionCount counts open inet sockets; -1 when enumeration is denied.
func (c *Collector) connectionCount(ctx context.Context) int {
	conns, err := gopsnet.ConnectionsWithContext(ctx, "inet")
	if err != nil {
		c.log.Warn("socket enumeration failed: %v", err)
		return -1
	}
	return len(conns)
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, want) {
			return true
		}
	}
	return false
}

// parseInterfaceAddr splits a CIDR-form address into family, address, and
// dotted/hex netmask. Bare addresses come back with an empty netmask.
func parseInterfaceAddr(cidr string) InterfaceAddress {
	addr := InterfaceAddress{Address: cidr}

	ip, ipNet, err := net.ParseCIDR(cidr)
	if err != nil {
		if parsed := net.ParseIP(cidr); parsed != nil {
			addr.Family = familyOf(parsed)
		}
		return addr
	}

	addr.Address = ip.String()
	addr.Family = familyOf(ip)
	// IP-style rendering gives dotted masks for v4 and colon-hex for v6.
	addr.Netmask = net.IP(ipNet.Mask).String()
	return addr
}

func familyOf(ip net.IP) string {
	if ip.To4() != nil {
		return "AF_INET"
	}
	return "AF_INET6"
}
