package auth

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the caller's address for role derivation.
// Priority: X-Client-IP (set by the frontend) > X-Forwarded-For > RemoteAddr.
func ClientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("X-Client-IP")); ip != "" {
		return ip
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// AllowList answers whether an address gets the elevated owner role.
type AllowList map[string]struct{}

func NewAllowList(ips []string) AllowList {
	list := make(AllowList, len(ips))
	for _, ip := range ips {
		list[strings.TrimSpace(ip)] = struct{}{}
	}
	return list
}

func (l AllowList) Contains(ip string) bool {
	_, ok := l[ip]
	return ok
}
