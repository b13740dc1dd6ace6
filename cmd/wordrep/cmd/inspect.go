package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geange/wordrep/automaton"
)

func newInspectCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "inspect <export-file>",
		Short: "Summarize an exported automaton",
		Long: `Read an automaton written by "decide --export" and print its size. With
--word, also report whether the automaton accepts the given word of labels.

Examples:
  wordrep inspect final.fsm
  wordrep inspect --minimize --word abcab final.fsm`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
	c.Flags().Bool("minimize", false, "also print the size of the minimal equivalent automaton")
	c.Flags().String("word", "", "check whether this word of single-letter labels is accepted")
	return c
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	d, err := automaton.ParseExport(f, automaton.DefaultSymbol)
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	automaton.Rename(d)

	out := cmd.OutOrStdout()
	labels := make([]string, 0, len(d.Alphabet()))
	for _, s := range d.Alphabet() {
		labels = append(labels, automaton.DefaultLabel(s))
	}
	fmt.Fprintf(out, "states: %d\n", d.NumStates())
	fmt.Fprintf(out, "accepting: %d\n", d.NumAccept())
	fmt.Fprintf(out, "alphabet: %v\n", labels)
	fmt.Fprintf(out, "sink: %d\n", automaton.FindSink(d))

	if minimize, _ := cmd.Flags().GetBool("minimize"); minimize {
		minimal, err := automaton.Minimize(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "minimal states: %d\n", minimal.NumStates())
	}

	if cmd.Flags().Changed("word") {
		text, _ := cmd.Flags().GetString("word")
		word := make([]int, 0, len(text))
		for _, r := range text {
			s, err := automaton.DefaultSymbol(string(r))
			if err != nil {
				return err
			}
			word = append(word, s)
		}
		fmt.Fprintf(out, "accepts %q: %t\n", text, automaton.Accepts(d, word))
	}
	return nil
}
