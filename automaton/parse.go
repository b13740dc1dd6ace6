package automaton

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/bits-and-blooms/bitset"
)

// exportLexer tokenizes the export format. Labels may not contain digits, ':' , '>' or '#'.
var exportLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Section", Pattern: `#[a-z]+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[:>]`},
	{Name: "Label", Pattern: `[^\s\d:>#]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type exportFile struct {
	States    []int         `parser:"\"#states\" @Int*"`
	Initial   int           `parser:"\"#initial\" @Int"`
	Accepting []int         `parser:"\"#accepting\" @Int*"`
	Alphabet  []string      `parser:"\"#alphabet\" @Label*"`
	Edges     []*exportEdge `parser:"\"#transitions\" @@*"`
}

type exportEdge struct {
	From  int    `parser:"@Int \":\""`
	Label string `parser:"@Label \">\""`
	To    int    `parser:"@Int"`
}

var exportParser = participle.MustBuild[exportFile](
	participle.Lexer(exportLexer),
	participle.Elide("Whitespace"),
)

// ParseExport
// Reads an automaton written by Export. symbol maps each label back to its symbol; nil means
// DefaultSymbol. A listed state without an edge on some symbol keeps its self-loop there. Ids missing
// from #states are removed, so the result may need Rename.
func ParseExport(r io.Reader, symbol func(label string) (int, error)) (*DFA, error) {
	if symbol == nil {
		symbol = DefaultSymbol
	}
	file, err := exportParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedExport, err)
	}

	bySymbol := make(map[string]int, len(file.Alphabet))
	alphabet := make([]int, 0, len(file.Alphabet))
	for _, label := range file.Alphabet {
		s, err := symbol(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedExport, err)
		}
		bySymbol[label] = s
		alphabet = append(alphabet, s)
	}

	size := 0
	listed := bitset.New(0)
	for _, s := range file.States {
		listed.Set(uint(s))
		size = max(size, s+1)
	}
	known := func(s int) error {
		if !listed.Test(uint(s)) {
			return fmt.Errorf("%w: state %d is not listed in #states", ErrMalformedExport, s)
		}
		return nil
	}

	d := NewDFA(alphabet, size)
	if err := known(file.Initial); err != nil {
		return nil, err
	}
	d.start = file.Initial
	for _, s := range file.Accepting {
		if err := known(s); err != nil {
			return nil, err
		}
		d.accept.Set(uint(s))
	}
	for _, e := range file.Edges {
		s, ok := bySymbol[e.Label]
		if !ok {
			return nil, fmt.Errorf("%w: label %q is not in #alphabet", ErrMalformedExport, e.Label)
		}
		if err := known(e.From); err != nil {
			return nil, err
		}
		if err := known(e.To); err != nil {
			return nil, err
		}
		if err := d.SetTransition(e.From, s, e.To); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedExport, err)
		}
	}

	missing := d.live.Difference(listed)
	if missing.Any() {
		d.removeStates(missing)
	}
	return d, nil
}
