package wordrep

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// matrixLexer reads one matrix row per line. Cells are 0, 1, true or false; commas, semicolons and
// brackets count as blanks and '#' starts a comment. Digits need no separator, so "0110" is four cells.
var matrixLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Cell", Pattern: `(?i)true|false|[01]`},
	{Name: "Whitespace", Pattern: `[ \t\r,;\[\]]+`},
})

type matrixFile struct {
	Rows []*matrixRow `parser:"EOL* @@*"`
}

type matrixRow struct {
	Cells []string `parser:"@Cell+ EOL*"`
}

var matrixParser = participle.MustBuild[matrixFile](
	participle.Lexer(matrixLexer),
	participle.Elide("Comment", "Whitespace"),
)

// ParseMatrix reads a matrix in text form and validates it.
func ParseMatrix(r io.Reader) (Matrix, error) {
	file, err := matrixParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	m := make(Matrix, len(file.Rows))
	for i, row := range file.Rows {
		m[i] = make([]bool, len(row.Cells))
		for j, cell := range row.Cells {
			m[i][j] = cell == "1" || strings.EqualFold(cell, "true")
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseMatrixString is ParseMatrix on a string.
func ParseMatrixString(s string) (Matrix, error) {
	return ParseMatrix(strings.NewReader(s))
}
