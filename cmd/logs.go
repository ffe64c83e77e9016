package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/journal"
)

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Explore the shell's logs.",
}

// terminationsCmd prints the append-only termination record.
var terminationsCmd = &cobra.Command{
	Use:   "terminations",
	Short: "Print the child termination record.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		record := journal.New(configuration.JournalFs(), configuration.TerminationLog)
		contents, err := record.Read()
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(contents))
		return nil
	},
}

// eventsCmd prints the JSON-lines event log in a readable form.
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print launched commands and reaped processes.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		fd, err := configuration.ReadEventLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		w := cmd.OutOrStdout()
		return journal.ReadJSONLinesLog(fd, func(e *journal.Event) {
			ts := time.UnixMicro(e.TimestampMicros).UTC().Format(time.RFC3339)
			switch {
			case e.RunCommand != nil:
				mode := "fg"
				if e.RunCommand.Background {
					mode = "bg"
				}
				fmt.Fprintf(w, "%s run [%s] %s\n", ts, mode, strings.Join(e.RunCommand.Command, " "))
			case e.Reaped != nil:
				fmt.Fprintf(w, "%s reaped pid %d\n", ts, e.Reaped.PID)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(terminationsCmd)
	logsCmd.AddCommand(eventsCmd)
}
