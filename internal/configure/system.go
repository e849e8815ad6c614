package configure

// System is the host capability surface the discovery pipeline runs
// against. The live implementation is internal/winsdk; tests inject a fake.
type System interface {
	// OS reports the running OS family, e.g. "windows".
	OS() string

	// FileExists reports whether path exists and is a regular file.
	FileExists(path string) bool

	// WriteFile writes a file, optionally marked executable. Rewriting
	// identical content must be safe.
	WriteFile(path string, data []byte, executable bool) error

	// LocateInstallation returns the base root of a Windows SDK
	// installation, if one can be found.
	LocateInstallation() (root string, ok bool, err error)

	// ResolveEnv resolves the named environment variables. With
	// allowMissing, unset names are omitted from the result instead of
	// failing.
	ResolveEnv(names []string, allowMissing bool) (map[string]string, error)
}
