package compose

import (
	"strconv"
	"strings"
)

// PortBinding is a canonicalized port specifier. Container is always
// present; Host equals Container when the token was a single bare integer.
type PortBinding struct {
	Host      int
	Container int
}

// ParsePort canonicalizes a compose port token. A host:container integer
// pair parses both sides; a bare integer is used for both. Any other shape
// (ranges, bind addresses, protocol suffixes) yields no binding — ports are
// advisory and never required for the generated schema.
func ParsePort(token string) (PortBinding, bool) {
	parts := strings.Split(token, ":")
	switch len(parts) {
	case 1:
		port, err := strconv.Atoi(parts[0])
		if err != nil {
			return PortBinding{}, false
		}
		return PortBinding{Host: port, Container: port}, true
	case 2:
		host, err := strconv.Atoi(parts[0])
		if err != nil {
			return PortBinding{}, false
		}
		container, err := strconv.Atoi(parts[1])
		if err != nil {
			return PortBinding{}, false
		}
		return PortBinding{Host: host, Container: container}, true
	default:
		return PortBinding{}, false
	}
}

// FirstPortBinding returns the first parseable port binding of a service.
// Only the first declared binding is translated; the rest — including any
// long-syntax entries — are left to the review notes.
func FirstPortBinding(spec ServiceSpec) (PortBinding, bool) {
	for _, token := range spec.Ports {
		if !token.Scalar {
			continue
		}
		if binding, ok := ParsePort(token.Text); ok {
			return binding, true
		}
	}
	return PortBinding{}, false
}
