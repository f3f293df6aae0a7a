package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vigil-sh/vigil/internal/config"
	"github.com/vigil-sh/vigil/internal/domain"
	"github.com/vigil-sh/vigil/internal/notify"
	"github.com/vigil-sh/vigil/internal/store"
)

var (
	addInterval  int
	addThreshold int
	addCommand   string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a site to monitor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return addSite(cfg, domain.Site{
			URL:       args[0],
			Interval:  addInterval,
			Threshold: addThreshold,
			Command:   addCommand,
		})
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List monitored sites",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return listSites(cfg)
	},
}

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <url>",
	Short: "Stop monitoring a site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return removeSite(cfg, args[0])
	},
}

func init() {
	addCmd.Flags().IntVarP(&addInterval, "interval", "i", 0, "Seconds between checks (default from config)")
	addCmd.Flags().IntVarP(&addThreshold, "threshold", "t", 0, "Consecutive failures before the command runs (default from config)")
	addCmd.Flags().StringVarP(&addCommand, "command", "x", "", "Recovery command to run on threshold breach")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
}

// addSite validates and persists a new site, and records the event in the
// daily log
func addSite(cfg *config.Config, site domain.Site) error {
	if site.Interval == 0 {
		site.Interval = cfg.Defaults.Interval
	}
	if site.Threshold == 0 {
		site.Threshold = cfg.Defaults.Threshold
	}

	st := store.New(cfg.Store)
	if err := st.Add(site); err != nil {
		return err
	}

	notifier := notify.New(cfg.LogDir, os.Stdout, nil, nil)
	defer notifier.Close()
	notifier.Notify(domain.NewEvent(domain.EventSiteAdded, site.URL,
		"Added %s (interval %ds, threshold %d)", site.URL, site.Interval, site.Threshold))

	return nil
}

// removeSite deletes a site from the store and records the event
func removeSite(cfg *config.Config, url string) error {
	st := store.New(cfg.Store)
	if err := st.Remove(url); err != nil {
		return err
	}

	notifier := notify.New(cfg.LogDir, os.Stdout, nil, nil)
	defer notifier.Close()
	notifier.Notify(domain.NewEvent(domain.EventSiteRemoved, url, "Removed %s", url))

	return nil
}

// listSites prints the configured sites as a table
func listSites(cfg *config.Config) error {
	st := store.New(cfg.Store)
	sites, err := st.Load()
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			fmt.Println("No sites configured. Add one with 'vigil add <url>'.")
			return nil
		}
		return err
	}
	if len(sites) == 0 {
		fmt.Println("No sites configured. Add one with 'vigil add <url>'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "URL\tINTERVAL\tTHRESHOLD\tCOMMAND")
	fmt.Fprintln(w, "---\t--------\t---------\t-------")
	for _, s := range sites {
		command := s.Command
		if command == "" {
			command = "-"
		}
		fmt.Fprintf(w, "%s\t%ds\t%d\t%s\n", s.URL, s.Interval, s.Threshold, command)
	}
	return w.Flush()
}
