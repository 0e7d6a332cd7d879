package services

import (
	"fmt"
	"net"
	"strconv"
)

// DefaultMCPPortRange is searched when the MCP HTTP transport is asked to
// pick its own port.
var DefaultMCPPortRange = [2]int{8750, 8799}

// FindAvailablePort returns the first port in [startPort, endPort] that
// can be bound on host.
func FindAvailablePort(host string, startPort, endPort int) (int, error) {
	for port := startPort; port <= endPort; port++ {
		listener, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", startPort, endPort)
}
