package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vigil-sh/vigil/internal/config"
	"github.com/vigil-sh/vigil/internal/domain"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive shell for managing and starting the monitor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return runShell(cfg, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

const shellHelp = `Commands:
  add <url> [interval] [threshold] [command...]   add a site
  list                                            list configured sites
  remove <url>                                    stop monitoring a site
  start                                           run the monitor (Ctrl-C returns here)
  help                                            show this help
  exit                                            leave the shell`

// runShell reads commands from in until exit or EOF
func runShell(cfg *config.Config, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "vigil interactive shell. Type 'help' for commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "vigil> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "exit", "quit":
			return nil
		case "help":
			fmt.Fprintln(out, shellHelp)
		case "list":
			if err := listSites(cfg); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case "add":
			if err := shellAdd(cfg, fields[1:]); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case "remove":
			if len(fields) != 2 {
				fmt.Fprintln(out, "Usage: remove <url>")
				continue
			}
			if err := removeSite(cfg, fields[1]); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case "start":
			// Ctrl-C stops the monitor and drops back to the prompt
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			if err := runMonitor(ctx, cfg); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
			stop()
		default:
			fmt.Fprintf(out, "Unknown command %q. Type 'help' for commands.\n", fields[0])
		}
	}
}

// shellAdd parses "add <url> [interval] [threshold] [command...]"
func shellAdd(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: add <url> [interval] [threshold] [command...]")
	}

	site := domain.Site{URL: args[0]}

	if len(args) > 1 {
		interval, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid interval %q: %w", args[1], domain.ErrInvalidSite)
		}
		site.Interval = interval
	}
	if len(args) > 2 {
		threshold, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid threshold %q: %w", args[2], domain.ErrInvalidSite)
		}
		site.Threshold = threshold
	}
	if len(args) > 3 {
		site.Command = strings.Join(args[3:], " ")
	}

	return addSite(cfg, site)
}
