package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show live status from a running vigil instance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flag("addr").Changed {
			apiAddr = discoverAPIAddress()
		}
		client := NewClient(apiAddr)

		status, err := client.GetStatus()
		if err != nil {
			return fmt.Errorf("%w\nIs vigil running? Try 'vigil start' first", err)
		}
		sites, err := client.GetSites()
		if err != nil {
			return err
		}

		fmt.Printf("Status: %s\n", status.Status)
		fmt.Printf("Uptime: %s\n", (time.Duration(status.UptimeSeconds) * time.Second).String())
		fmt.Printf("Store:  %s\n", status.StoreFile)
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "URL\tSTATUS\tFAILURES\tLAST CHECKED")
		fmt.Fprintln(w, "---\t------\t--------\t------------")
		for _, s := range sites.Sites {
			fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\n",
				s.URL, s.Status, s.Failures, s.Threshold, formatAge(s.LastChecked))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
