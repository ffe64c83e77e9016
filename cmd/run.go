package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/environ"
	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/journal"
	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/shell"
)

// runCmd starts the interactive shell.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		eventFd, err := configuration.OpenEventLog()
		if err != nil {
			return err
		}
		defer eventFd.Close()
		record := journal.NewJSONLinesRecorder(eventFd)

		// The reaper runs for the whole session, collecting children
		// regardless of which launch created them.
		terminations := journal.New(configuration.JournalFs(), configuration.TerminationLog)
		reaper := shell.StartReaper(terminations, record)
		defer reaper.Stop()

		// Start from the filesystem root; the environment is inherited
		// from the invoking process.
		if err := os.Chdir("/"); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "chdir: %v\n", err)
		}

		interpreter := shell.New(shell.Options{
			Env:            environ.NewStoreFromEnviron(os.Environ()),
			Stdin:          cmd.InOrStdin(),
			Stdout:         cmd.OutOrStdout(),
			Stderr:         cmd.ErrOrStderr(),
			Prompt:         configuration.Prompt,
			FallbackPrompt: configuration.FallbackPrompt,
			IsTerminal: func() bool {
				return term.IsTerminal(int(os.Stdin.Fd()))
			},
			Record: record,
		})

		return interpreter.Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
