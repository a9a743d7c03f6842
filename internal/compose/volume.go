package compose

import "strings"

// Mount mechanisms for a volume specifier.
const (
	MountNamedVolume = "volume"
	MountBind        = "bind"
)

// VolumeBinding is a canonicalized volume specifier.
type VolumeBinding struct {
	// Mechanism is MountNamedVolume or MountBind.
	Mechanism string
	// Source is the volume name or the host path.
	Source string
	// ContainerPath is the mount point inside the container.
	ContainerPath string
}

// ParseVolume canonicalizes a compose volume token. Tokens with fewer than
// two colon-separated parts are unrecognized and reported verbatim for
// manual handling rather than guessed. A source starting with a path
// separator or a relative-path marker is a bind mount; anything else is a
// named volume whose name is the source token. Mode suffixes (":ro") are
// ignored.
func ParseVolume(token string) (VolumeBinding, bool) {
	parts := strings.Split(token, ":")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return VolumeBinding{}, false
	}

	source, containerPath := parts[0], parts[1]

	mechanism := MountNamedVolume
	if strings.HasPrefix(source, "/") || strings.HasPrefix(source, "./") || strings.HasPrefix(source, "../") {
		mechanism = MountBind
	}

	return VolumeBinding{
		Mechanism:     mechanism,
		Source:        source,
		ContainerPath: containerPath,
	}, true
}
