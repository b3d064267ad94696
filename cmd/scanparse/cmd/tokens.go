package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/scanparse/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|expression]",
	Short: "Print the token stream of an expression",
	Long: `Prints the scanned token stream without parsing it.

The input can be a file of expressions, a literal expression, or lines
piped on standard input:

  scanparse tokens expressions.txt
  scanparse tokens "ab12 + (c*3)"
  echo "1+2*3" | scanparse tokens`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			return tokenizeFile(out, args[0])
		}
	}

	if len(args) > 0 {
		printTokens(out, strings.Join(args, " "))
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		printTokens(out, scanner.Text())
	}
	return scanner.Err()
}

func tokenizeFile(out io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		printTokens(out, scanner.Text())
	}
	return scanner.Err()
}

func printTokens(out io.Writer, line string) {
	for _, token := range parser.TokenizeLine(line) {
		fmt.Fprintf(out, "%-12s %q  column %d\n", token.Type, token.Value, token.Column)
	}
	fmt.Fprintln(out)
}
