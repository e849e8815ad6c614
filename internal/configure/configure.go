// Package configure discovers the Windows SDK resource compiler family and
// generates the toolchain configuration artifacts describing what it found.
package configure

import (
	"fmt"
	"path/filepath"

	"github.com/jheaff1/rules-cc/internal/configure/gen"
	"github.com/jheaff1/rules-cc/internal/msg"
)

// Options control a single configuration pass.
type Options struct {
	// OutputDir receives the wrapper scripts and both artifacts.
	OutputDir string
	// RepoName qualifies the generated toolchain labels. Empty means
	// gen.DefaultRepoName.
	RepoName string
	// SDKDir overrides installation lookup with a fixed base root.
	SDKDir string
	// ExtraRoots are additional bin roots searched after the probed ones,
	// lowest priority last.
	ExtraRoots []string
}

// Result reports what a configuration pass discovered and wrote.
type Result struct {
	Toolchains ToolchainSet
	Files      []string
}

// Discover runs the probe and resolve stages without writing anything.
func Discover(sys System, reg Registry, opts Options) (ToolchainSet, error) {
	roots, err := CandidateRoots(sys, opts.SDKDir)
	if err != nil {
		return nil, err
	}
	if sys.OS() == hostWindows {
		roots = append(roots, opts.ExtraRoots...)
	}
	for _, root := range roots {
		msg.Verbose("searching %s", root)
	}
	return Resolve(sys, reg, roots), nil
}

// Configure runs the full pipeline: probe, resolve, then write the wrapper
// scripts and both artifacts into opts.OutputDir. An empty discovery is not
// an error; it produces artifacts declaring no toolchains. Output depends
// only on the resolved set, so rewriting over a previous pass is safe.
func Configure(sys System, reg Registry, opts Options) (Result, error) {
	set, err := Discover(sys, reg, opts)
	if err != nil {
		return Result{}, err
	}

	var files []string
	write := func(name, content string, executable bool) error {
		path := filepath.Join(opts.OutputDir, name)
		if err := sys.WriteFile(path, []byte(content), executable); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		files = append(files, path)
		return nil
	}

	toolchains := make([]gen.Toolchain, 0, len(set))
	for _, rec := range set {
		msg.Verbose("found %s resource compiler: %s", rec.Arch.Key, rec.Path)
		toolchains = append(toolchains, gen.Toolchain{
			Arch: rec.Arch.Key,
			CPU:  rec.Arch.CPU,
			Path: rec.Path,
		})
		if err := write(gen.WrapperName(rec.Arch.Key), gen.WrapperScript(rec.Path), true); err != nil {
			return Result{}, err
		}
	}

	records := gen.Records(toolchains, opts.RepoName)
	if err := write(gen.DescriptorFile, gen.RenderBuild(records), false); err != nil {
		return Result{}, err
	}
	if err := write(gen.RegisterFile, gen.RenderRegister(records), false); err != nil {
		return Result{}, err
	}

	return Result{Toolchains: set, Files: files}, nil
}
