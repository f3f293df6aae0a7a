package cli

import (
	"github.com/spf13/cobra"

	"github.com/vigil-sh/vigil/internal/tui"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard for a running vigil instance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flag("addr").Changed {
			apiAddr = discoverAPIAddress()
		}
		return tui.Run(NewClient(apiAddr))
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
