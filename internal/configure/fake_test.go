package configure

import (
	"fmt"
	"path/filepath"
	"strings"
)

// fakeSystem implements System against an in-memory filesystem and
// environment, recording every call the pipeline makes.
type fakeSystem struct {
	os         string
	files      map[string]bool
	located    string // LocateInstallation result; "" means absent
	locateErr  error
	env        map[string]string
	resolveErr error

	writes       map[string]fakeWrite
	writeOrder   []string
	probed       []string // every FileExists query, in order
	locateCalls  int
	resolveCalls int
}

type fakeWrite struct {
	data       string
	executable bool
}

func newFakeSystem(osName string) *fakeSystem {
	return &fakeSystem{
		os:     osName,
		files:  make(map[string]bool),
		env:    make(map[string]string),
		writes: make(map[string]fakeWrite),
	}
}

// addFile marks the joined path as an existing regular file and returns it.
func (f *fakeSystem) addFile(elem ...string) string {
	path := filepath.Join(elem...)
	f.files[path] = true
	return path
}

func (f *fakeSystem) OS() string { return f.os }

func (f *fakeSystem) FileExists(path string) bool {
	f.probed = append(f.probed, path)
	return f.files[path]
}

func (f *fakeSystem) WriteFile(path string, data []byte, executable bool) error {
	if _, ok := f.writes[path]; !ok {
		f.writeOrder = append(f.writeOrder, path)
	}
	f.writes[path] = fakeWrite{data: string(data), executable: executable}
	return nil
}

func (f *fakeSystem) LocateInstallation() (string, bool, error) {
	f.locateCalls++
	if f.locateErr != nil {
		return "", false, f.locateErr
	}
	if f.located == "" {
		return "", false, nil
	}
	return f.located, true, nil
}

func (f *fakeSystem) ResolveEnv(names []string, allowMissing bool) (map[string]string, error) {
	f.resolveCalls++
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	env := make(map[string]string)
	for _, name := range names {
		if value, ok := f.env[name]; ok {
			env[name] = value
		} else if !allowMissing {
			return nil, fmt.Errorf("environment variable %s is not set", name)
		}
	}
	return env, nil
}

// probedUnder reports whether any existence check was made below root.
func (f *fakeSystem) probedUnder(root string) bool {
	for _, p := range f.probed {
		if strings.HasPrefix(p, root) {
			return true
		}
	}
	return false
}
