package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X github.com/geange/wordrep/cmd/wordrep/cmd.version=...".
var version = "0.1.0"

// NewRootCommand builds the wordrep command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "wordrep",
		Short: "Decide word-representability of graphs with finite automata",
		Long: `Decide whether an undirected graph is word-representable: whether a word over
the node labels exists in which two labels alternate exactly when their nodes
are adjacent.

Examples:
  wordrep decide graph.txt                          # Exact decision
  wordrep decide --strategy fast --seed 7 graph.txt # Fast decision, fixed order
  wordrep decide --export final.fsm graph.txt       # Keep the final automaton
  wordrep inspect --word abab final.fsm             # Check a word against an export`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "print one progress line per combination step")

	root.AddCommand(newDecideCommand(), newInspectCommand(), newVersionCommand())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wordrep %s\n", version)
		},
	}
}
