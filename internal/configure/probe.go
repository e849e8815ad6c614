package configure

import (
	"fmt"
	"path/filepath"
)

const (
	hostWindows = "windows"

	envSdkDir        = "WindowsSdkDir"
	envSdkVerBinPath = "WindowsSdkVerBinPath"
)

// CandidateRoots returns the SDK bin roots to search for resource
// compilers, highest priority first: the versioned bin directory of the
// active SDK, then the unversioned legacy layout. A non-Windows host or a
// missing installation yields no roots and no error. A non-empty sdkDir
// skips installation lookup and uses it as the base root directly.
func CandidateRoots(sys System, sdkDir string) ([]string, error) {
	if sys.OS() != hostWindows {
		return nil, nil
	}

	base := sdkDir
	if base == "" {
		root, ok, err := sys.LocateInstallation()
		if err != nil {
			return nil, fmt.Errorf("failed to locate a Windows SDK: %w", err)
		}
		if !ok {
			return nil, nil
		}
		base = root
	}

	env, err := sys.ResolveEnv([]string{envSdkDir, envSdkVerBinPath}, true)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve the SDK environment: %w", err)
	}
	if dir := env[envSdkDir]; dir != "" && sdkDir == "" {
		base = dir
	}

	var roots []string
	if verBin := env[envSdkVerBinPath]; verBin != "" {
		roots = append(roots, verBin)
	}
	return append(roots, filepath.Join(base, "bin")), nil
}
