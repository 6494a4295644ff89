package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

const shellPrompt = "dateutil> "

// lineReader is the part of *readline.Instance used by the shell loop.
type lineReader interface {
	Readline() (string, error)
}

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively with line editing and history",
		Long: `shell reads one command per line, for example:

  dateutil> format "2023-06-15 14:30:00" --style full
  dateutil> diff "2023-01-01 00:00:00" --human

Type exit or press Ctrl-D to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          shellPrompt,
				HistoryFile:     historyFile(),
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("failed to start shell: %w", err)
			}
			defer rl.Close()

			return a.runShell(rl, cmd.OutOrStdout())
		},
	}
}

// runShell executes lines from r until exit or end of input.
// Command errors are printed and do not end the loop.
func (a *app) runShell(r lineReader, out io.Writer) error {
	for {
		line, err := r.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if err := a.runLine(line, out); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

func (a *app) runLine(line string, out io.Writer) error {
	args, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("failed to split line: %w", err)
	}
	if len(args) > 0 && args[0] == "shell" {
		return errors.New("already in shell")
	}

	// Flags given to the shell itself apply to every line; a line's own flags
	// apply to that line only.
	flags := a.flags
	defer func() { a.flags = flags }()
	cmd := newRootCmd(a)
	a.flags = flags
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd.Execute()
}

// historyFile returns ~/.config/dateutil/history, or "" to disable history.
func historyFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "dateutil", "history")
}
