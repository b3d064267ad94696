package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/scanparse/internal/tui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive expression REPL",
	Long: `Starts an interactive terminal session for exploring expressions.

Each entered expression is tokenized, parsed, and its parse tree is
shown level by level.

Keys:
  Enter     - parse the entered expression
  Up/Down   - scroll the tree view
  Ctrl+L    - clear the view
  Ctrl+C    - quit`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(
		tui.NewModel(),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "REPL error: %v\n", err)
		return err
	}

	return nil
}
