package configure

// Arch describes one supported target architecture of the resource
// compiler family.
type Arch struct {
	// Key is the architecture directory name under an SDK bin root, e.g.
	// the "x64" in `C:\Program Files (x86)\Windows Kits\10\bin\10.0.22621.0\x64\rc.exe`.
	Key string
	// CPU is the normalized CPU constraint understood by the build
	// orchestrator's platform system.
	CPU string
}

// Registry is the closed set of supported architectures. Declaration order
// is the canonical iteration order for discovery and for every generated
// artifact.
type Registry []Arch

// DefaultRegistry returns the architectures rc.exe ships for.
func DefaultRegistry() Registry {
	return Registry{
		{Key: "x64", CPU: "@platforms//cpu:x86_64"},
		{Key: "x86", CPU: "@platforms//cpu:x86_32"},
		{Key: "arm64", CPU: "@platforms//cpu:arm64"},
		{Key: "arm", CPU: "@platforms//cpu:armv7"},
	}
}
