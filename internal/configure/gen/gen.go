// Package gen renders the configuration artifacts describing the resolved
// resource compiler toolchains. Artifact content is a pure function of the
// resolved set: no timestamps, no incidental ordering.
package gen

const (
	// DescriptorFile is the declarative toolchain descriptor.
	DescriptorFile = "BUILD.bazel"
	// RegisterFile holds the registration entry point the orchestrator
	// calls to make the declared toolchains selectable.
	RegisterFile = "register.bzl"

	// DefaultRepoName qualifies generated labels when no repository name
	// is configured.
	DefaultRepoName = "local_config_rc"

	toolchainType  = "@rules_cc//rc:toolchain_type"
	rcToolchainBzl = "@rules_cc//rc:rc_toolchain.bzl"
	execConstraint = "@platforms//os:windows"
)

// Toolchain is one resolved resource compiler handed to the generators.
type Toolchain struct {
	Arch string // architecture key, e.g. "x64"
	CPU  string // normalized CPU constraint
	Path string // absolute path to rc.exe
}

// Record is one toolchain declaration of the descriptor artifact.
type Record struct {
	Name      string // rc_toolchain target name, e.g. "rc_x64"
	Toolchain string // toolchain target name, e.g. "rc_x64_toolchain"
	Label     string // fully qualified label of the toolchain target
	CPU       string
	Wrapper   string // wrapper script filename
}

// Records maps resolved toolchains to declaration records, preserving
// order. An empty repoName falls back to DefaultRepoName.
func Records(toolchains []Toolchain, repoName string) []Record {
	if repoName == "" {
		repoName = DefaultRepoName
	}
	records := make([]Record, 0, len(toolchains))
	for _, tc := range toolchains {
		name := "rc_" + tc.Arch
		records = append(records, Record{
			Name:      name,
			Toolchain: name + "_toolchain",
			Label:     "@" + repoName + "//:" + name + "_toolchain",
			CPU:       tc.CPU,
			Wrapper:   WrapperName(tc.Arch),
		})
	}
	return records
}
