// rcfigure [output dir]
package cmd

import (
	"fmt"
	"os"

	"github.com/jheaff1/rules-cc/internal/configure"
	"github.com/jheaff1/rules-cc/internal/msg"
	"github.com/jheaff1/rules-cc/internal/winsdk"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "rcfigure.toml"

var (
	flagConfig   string
	flagRepoName string
	flagSdkDir   string
	flagVerbose  bool
)

// loadOptions merges rcfigure.toml (if any) with the command line flags,
// flags winning.
func loadOptions(outDir string) (configure.Options, error) {
	opts := configure.Options{OutputDir: outDir}

	path := flagConfig
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		cfg, err := configure.ParseConfigFromFile(path, configure.NewConfigEnv())
		if err != nil {
			return opts, err
		}
		if opts.OutputDir == "" {
			opts.OutputDir = cfg.Output.Dir
		}
		opts.RepoName = cfg.Output.RepoName
		opts.SDKDir = cfg.SDK.Dir
		if opts.ExtraRoots, err = configure.ExpandExtraRoots(cfg.SDK.ExtraRoots); err != nil {
			return opts, err
		}
	}

	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if flagRepoName != "" {
		opts.RepoName = flagRepoName
	}
	if flagSdkDir != "" {
		opts.SDKDir = flagSdkDir
	}
	return opts, nil
}

func doConfigure(cmd *cobra.Command, args []string) {
	outDir := ""
	if len(args) > 0 {
		outDir = args[0]
	}
	msg.Verbosity(flagVerbose)

	opts, err := loadOptions(outDir)
	if err != nil {
		msg.Fatal("%v", err)
	}

	res, err := configure.Configure(winsdk.Host{}, configure.DefaultRegistry(), opts)
	if err != nil {
		msg.Fatal("%v", err)
	}

	if len(res.Toolchains) == 0 {
		msg.Warn("no resource compilers found, wrote an empty configuration to %s", opts.OutputDir)
		return
	}
	msg.Info("configured %d resource compiler toolchain(s) in %s", len(res.Toolchains), opts.OutputDir)
}

var rootCmd = &cobra.Command{
	Use:   "rcfigure [output dir]",
	Short: "Windows resource compiler toolchain autoconfiguration",
	Long: `Probes the host for Windows SDK resource compilers (rc.exe), one per
target architecture, and generates wrapper scripts plus the toolchain
descriptor and registration artifacts for the build. If no output dir is
given, uses "."`,
	Args: cobra.MaximumNArgs(1),
	Run:  doConfigure,
}

func init() {
	addConfigureFlags(rootCmd)
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Trace discovery steps")
}

func addConfigureFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to rcfigure.toml (default: ./rcfigure.toml if present)")
	cmd.Flags().StringVar(&flagRepoName, "repo-name", "", "Repository name used in generated toolchain labels")
	cmd.Flags().StringVar(&flagSdkDir, "sdk-dir", "", "Use a fixed Windows SDK root instead of probing for one")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
