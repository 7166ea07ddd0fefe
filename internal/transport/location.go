package transport

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultDaemonPort is the default port of `snap serve --listen`.
const DefaultDaemonPort = 9876

// Location represents a parsed repository argument.
type Location struct {
	Scheme string
	Host   string
	User   string
	Path   string
	Port   int
}

// IsRemote returns true if the location refers to a remote host.
func (l Location) IsRemote() bool {
	return l.Host != ""
}

// IsDaemon returns true if the location names a snap daemon (snap://).
// The daemon serves a fixed repository, so Path is unused.
func (l Location) IsDaemon() bool {
	return l.Scheme == "snap"
}

// Addr returns host:port for daemon locations.
func (l Location) Addr() string {
	port := l.Port
	if port == 0 {
		port = DefaultDaemonPort
	}
	return net.JoinHostPort(l.Host, strconv.Itoa(port))
}

// String returns a human-readable representation.
func (l Location) String() string {
	if l.IsDaemon() {
		return "snap://" + l.Addr()
	}
	if !l.IsRemote() {
		return l.Path
	}
	if l.User != "" {
		return fmt.Sprintf("%s@%s:%s", l.User, l.Host, l.Path)
	}
	return fmt.Sprintf("%s:%s", l.Host, l.Path)
}

// ParseLocation parses a repository argument into a Location.
//
// Supported formats:
//   - /absolute/path          → local
//   - relative/path           → local
//   - host:path               → remote over SSH (current user)
//   - user@host:path          → remote over SSH
//   - snap://host[:port]      → snap daemon (default port 9876)
//
// A bare word with no colon is always local. A path containing ":" is only
// treated as remote if the part before the colon contains no path
// separators (so "/foo:bar" and "./host:path" are local).
func ParseLocation(arg string) (Location, error) {
	if strings.HasPrefix(arg, "snap://") {
		return parseDaemonURL(arg)
	}

	if filepath.IsAbs(arg) || strings.HasPrefix(arg, "./") || strings.HasPrefix(arg, "../") {
		return Location{Path: arg}, nil
	}

	hostPart, pathPart, ok := strings.Cut(arg, ":")
	if !ok || hostPart == "" || strings.ContainsRune(hostPart, '/') {
		return Location{Path: arg}, nil
	}

	var user, host string
	if at := strings.LastIndexByte(hostPart, '@'); at >= 0 {
		user = hostPart[:at]
		host = hostPart[at+1:]
	} else {
		host = hostPart
	}
	if host == "" {
		return Location{Path: arg}, nil
	}
	if pathPart == "" {
		return Location{}, fmt.Errorf("remote location %q has no repository path", arg)
	}

	return Location{Host: host, User: user, Path: pathPart}, nil
}

func parseDaemonURL(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("parse %q: %w", raw, err)
	}
	host := u.Hostname()
	if host == "" {
		return Location{}, fmt.Errorf("daemon location %q has no host", raw)
	}
	if u.Path != "" && u.Path != "/" {
		return Location{}, fmt.Errorf("daemon location %q: the daemon serves a fixed repository, drop the path", raw)
	}

	port := 0
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return Location{}, fmt.Errorf("daemon location %q: invalid port %q", raw, p)
		}
	}

	return Location{Scheme: "snap", Host: host, Port: port}, nil
}
