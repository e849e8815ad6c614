package configure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfigEnv() ConfigEnv {
	return ConfigEnv{
		HostOS:   "windows",
		HostArch: "amd64",
		Environ:  map[string]string{"PROGRAMFILES": `C:\Program Files`},
	}
}

func TestParseConfig(t *testing.T) {
	src := `
[output]
dir = "{{ host_os }}-rc"
repo_name = "my_config_rc"

[sdk]
dir = '{{ environ["PROGRAMFILES"] }}\Windows Kits\10'
extra_roots = ["C:/sdks/*/bin"]
`
	cfg, err := ParseConfig(strings.NewReader(src), testConfigEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Dir != "windows-rc" {
		t.Fatalf("expected interpolated output dir, got %q", cfg.Output.Dir)
	}
	if cfg.Output.RepoName != "my_config_rc" {
		t.Fatalf("unexpected repo name %q", cfg.Output.RepoName)
	}
	if cfg.SDK.Dir != `C:\Program Files\Windows Kits\10` {
		t.Fatalf("expected interpolated sdk dir, got %q", cfg.SDK.Dir)
	}
	if len(cfg.SDK.ExtraRoots) != 1 || cfg.SDK.ExtraRoots[0] != "C:/sdks/*/bin" {
		t.Fatalf("unexpected extra roots %v", cfg.SDK.ExtraRoots)
	}
}

func TestParseConfig_BadExpression(t *testing.T) {
	src := `
[sdk]
dir = "{{ no_such_name }}"
`
	if _, err := ParseConfig(strings.NewReader(src), testConfigEnv()); err == nil {
		t.Fatalf("expected error for unknown identifier")
	}
}

func TestParseConfig_BadTOML(t *testing.T) {
	if _, err := ParseConfig(strings.NewReader("[sdk\ndir = 1"), testConfigEnv()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestParseConfigFromFile_Missing(t *testing.T) {
	if _, err := ParseConfigFromFile(filepath.Join(t.TempDir(), "nope.toml"), testConfigEnv()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestExpandExtraRoots(t *testing.T) {
	base := t.TempDir()
	for _, dir := range []string{"10.0.19041.0", "10.0.22621.0"} {
		if err := os.MkdirAll(filepath.Join(base, dir, "bin"), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	roots, err := ExpandExtraRoots([]string{
		filepath.ToSlash(filepath.Join(base, "*", "bin")),
		filepath.ToSlash(filepath.Join(base, "no-such-dir", "bin")),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %v", roots)
	}
	if !strings.Contains(roots[0], "10.0.19041.0") || !strings.Contains(roots[1], "10.0.22621.0") {
		t.Fatalf("expected sorted version roots, got %v", roots)
	}
}

func TestExpandExtraRoots_BadPattern(t *testing.T) {
	if _, err := ExpandExtraRoots([]string{"sdks/[/bin"}); err == nil {
		t.Fatalf("expected error for malformed pattern")
	}
}
