package configure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"runtime"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/expr-lang/expr"
	"github.com/pelletier/go-toml/v2"
)

// Config is the optional rcfigure.toml read by the command line surface.
type Config struct {
	Output OutputSection `toml:"output"`
	SDK    SDKSection    `toml:"sdk"`
}

// OutputSection defines the [output] section
type OutputSection struct {
	Dir      string `toml:"dir"`
	RepoName string `toml:"repo_name"`
}

// SDKSection defines the [sdk] section
type SDKSection struct {
	Dir        string   `toml:"dir"`
	ExtraRoots []string `toml:"extra_roots"`
}

// ConfigEnv is the evaluation environment for {{...}} expressions in
// config strings.
type ConfigEnv struct {
	HostOS   string            `expr:"host_os"`
	HostArch string            `expr:"host_arch"`
	Environ  map[string]string `expr:"environ"`
}

func NewConfigEnv() ConfigEnv {
	environ := make(map[string]string)
	for _, e := range os.Environ() {
		if i := strings.Index(e, "="); i >= 0 {
			environ[e[:i]] = e[i+1:]
		}
	}

	return ConfigEnv{
		HostOS:   runtime.GOOS,
		HostArch: runtime.GOARCH,
		Environ:  environ,
	}
}

var exprRegex = regexp.MustCompile(`\{\{(.+?)\}\}`)

// evaluateString finds and evaluates all {{...}} expressions in a string
func evaluateString(s string, env ConfigEnv) (string, error) {
	matches := exprRegex.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	var builder strings.Builder
	lastIndex := 0

	for _, matchIndexes := range matches {
		builder.WriteString(s[lastIndex:matchIndexes[0]])

		expression := strings.TrimSpace(s[matchIndexes[2]:matchIndexes[3]])
		program, err := expr.Compile(expression, expr.Env(env))
		if err != nil {
			return "", fmt.Errorf("failed to compile expression %q: %w", expression, err)
		}

		result, err := expr.Run(program, env)
		if err != nil {
			return "", fmt.Errorf("failed to run expression %q: %w", expression, err)
		}

		builder.WriteString(fmt.Sprintf("%v", result))
		lastIndex = matchIndexes[1]
	}

	builder.WriteString(s[lastIndex:])

	return builder.String(), nil
}

func ParseConfig(rdr io.Reader, env ConfigEnv) (*Config, error) {
	cfg := new(Config)
	dec := toml.NewDecoder(rdr)
	if err := dec.Decode(cfg); err != nil {
		if derr, ok := err.(*toml.DecodeError); ok {
			return nil, errors.New(derr.String())
		}
		return nil, err
	}

	var err error
	if cfg.Output.Dir, err = evaluateString(cfg.Output.Dir, env); err != nil {
		return nil, err
	}
	if cfg.SDK.Dir, err = evaluateString(cfg.SDK.Dir, env); err != nil {
		return nil, err
	}
	for i, root := range cfg.SDK.ExtraRoots {
		if cfg.SDK.ExtraRoots[i], err = evaluateString(root, env); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// ParseConfigFromFile parses a config file from a filepath
func ParseConfigFromFile(path string, env ConfigEnv) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseConfig(bufio.NewReader(f), env)
}

// ExpandExtraRoots glob-expands the configured extra roots. Patterns that
// match nothing are dropped. Matches of one pattern are sorted, and pattern
// order is kept, so the resulting candidate order is stable across runs.
func ExpandExtraRoots(patterns []string) ([]string, error) {
	var roots []string
	for _, pat := range patterns {
		matches, err := doublestar.FilepathGlob(pat)
		if err != nil {
			return nil, fmt.Errorf("bad extra root pattern %q: %w", pat, err)
		}
		slices.Sort(matches)
		roots = append(roots, matches...)
	}
	return roots, nil
}
