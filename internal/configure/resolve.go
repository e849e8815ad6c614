package configure

import "path/filepath"

// rcExe is the expected binary name under `<root>/<arch>/`.
const rcExe = "rc.exe"

// CompilerRecord is one discovered resource compiler.
type CompilerRecord struct {
	Arch Arch
	Path string
}

// ToolchainSet holds the discovered compilers in registry order, at most
// one per architecture. It may be empty.
type ToolchainSet []CompilerRecord

// Resolve searches the candidate roots in priority order. The first root
// containing at least one resource compiler wins outright: later roots are
// never consulted, even when they would have matched more architectures.
// An installation split across SDK versions therefore resolves only the
// architectures of the most specific root.
func Resolve(sys System, reg Registry, roots []string) ToolchainSet {
	for _, root := range roots {
		var set ToolchainSet
		for _, arch := range reg {
			path := filepath.Join(root, arch.Key, rcExe)
			if sys.FileExists(path) {
				set = append(set, CompilerRecord{Arch: arch, Path: path})
			}
		}
		if len(set) > 0 {
			return set
		}
	}
	return nil
}
