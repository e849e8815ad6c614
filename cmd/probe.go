// rcfigure probe
package cmd

import (
	"fmt"

	"github.com/jheaff1/rules-cc/internal/configure"
	"github.com/jheaff1/rules-cc/internal/msg"
	"github.com/jheaff1/rules-cc/internal/winsdk"
	"github.com/spf13/cobra"
)

func doProbe(cmd *cobra.Command, args []string) {
	msg.Verbosity(flagVerbose)

	opts, err := loadOptions("")
	if err != nil {
		msg.Fatal("%v", err)
	}

	set, err := configure.Discover(winsdk.Host{}, configure.DefaultRegistry(), opts)
	if err != nil {
		msg.Fatal("%v", err)
	}

	if len(set) == 0 {
		msg.Warn("no resource compilers found")
		return
	}
	for _, rec := range set {
		fmt.Printf("%-6s %s\n", rec.Arch.Key, rec.Path)
	}
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Discover resource compilers without writing anything",
	Long:  `Runs discovery and prints the resolved architectures and compiler paths. No files are written.`,
	Args:  cobra.NoArgs,
	Run:   doProbe,
}

func init() {
	// rcfigure probe subcommand
	rootCmd.AddCommand(probeCmd)
	addConfigureFlags(probeCmd)
}
