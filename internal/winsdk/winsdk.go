// Package winsdk implements the host capability surface against the real
// operating system: filesystem access, environment resolution and Windows
// SDK installation lookup.
package winsdk

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Host is the live host system.
type Host struct{}

func (Host) OS() string {
	return runtime.GOOS
}

func (Host) FileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

func (Host) WriteFile(path string, data []byte, executable bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	mode := os.FileMode(0o644)
	if executable {
		mode = 0o755
	}
	return os.WriteFile(path, data, mode)
}

func (Host) ResolveEnv(names []string, allowMissing bool) (map[string]string, error) {
	env := make(map[string]string, len(names))
	for _, name := range names {
		value, ok := os.LookupEnv(name)
		if !ok {
			if allowMissing {
				continue
			}
			return nil, fmt.Errorf("environment variable %s is not set", name)
		}
		env[name] = value
	}
	return env, nil
}
