package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pathMatrix = `# path a-b-c
0 1 0
1 0 1
0 1 0
`

const wheelMatrix = `[0,1,0,0,1,1]
[1,0,1,0,0,1]
[0,1,0,1,0,1]
[0,0,1,0,1,1]
[1,0,0,1,0,1]
[1,1,1,1,1,0]
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestDecide(t *testing.T) {
	t.Run("exact representable", func(t *testing.T) {
		path := writeTemp(t, "path.txt", pathMatrix)
		out, _, err := execute(t, "", "decide", path)
		require.NoError(t, err)
		assert.Contains(t, out, "representable: true")
		assert.Contains(t, out, "strategy: exact, steps: 3, max states: 15")
	})

	t.Run("fast wheel", func(t *testing.T) {
		path := writeTemp(t, "wheel.txt", wheelMatrix)
		out, _, err := execute(t, "", "decide", "--strategy", "fast", "--seed", "3", path)
		require.NoError(t, err)
		assert.Contains(t, out, "representable: false")
		assert.Contains(t, out, "strategy: fast")
	})

	t.Run("stdin and verbose", func(t *testing.T) {
		out, _, err := execute(t, pathMatrix, "decide", "-v", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "Number of combined automatas: 1 - Number of States: 4\n")
		assert.Contains(t, out, "Number of combined automatas: 2 - Number of States: 11\n")
		assert.Contains(t, out, "Number of combined automatas: 3 - Number of States: 15\n")
	})

	t.Run("debug logs carry run id", func(t *testing.T) {
		_, errOut, err := execute(t, pathMatrix, "decide", "--log-level", "debug", "--log-format", "json", "-")
		require.NoError(t, err)
		assert.Contains(t, errOut, `"run_id":`)
		assert.Contains(t, errOut, `"msg":"combined constraint automata"`)
		assert.Contains(t, errOut, `"msg":"decision"`)
	})

	t.Run("export and metrics", func(t *testing.T) {
		dir := t.TempDir()
		matrix := writeTemp(t, "edge.txt", "0 1\n1 0\n")
		exportPath := filepath.Join(dir, "final.fsm")
		metricsPath := filepath.Join(dir, "run.prom")

		_, _, err := execute(t, "", "decide", "--export", exportPath, "--metrics", metricsPath, matrix)
		require.NoError(t, err)

		exported, err := os.ReadFile(exportPath)
		require.NoError(t, err)
		assert.Equal(t, "#states\n0\n1\n2\n3\n#initial\n0\n#accepting\n1\n2\n#alphabet\na\nb\n#transitions"+
			"\n0:a>1\n0:b>2\n1:a>3\n1:b>2\n2:a>1\n2:b>3\n3:a>3\n3:b>3", string(exported))

		metrics, err := os.ReadFile(metricsPath)
		require.NoError(t, err)
		assert.Contains(t, string(metrics), `wordrep_decisions_total{representable="true",strategy="exact"} 1`)
	})

	t.Run("export failure keeps decision", func(t *testing.T) {
		matrix := writeTemp(t, "edge.txt", "0 1\n1 0\n")
		exportPath := filepath.Join(t.TempDir(), "missing", "final.fsm")
		out, errOut, err := execute(t, "", "decide", "--export", exportPath, matrix)
		require.NoError(t, err)
		assert.Contains(t, out, "representable: true")
		assert.Contains(t, errOut, "export automaton")
	})

	t.Run("config file", func(t *testing.T) {
		cfg := writeTemp(t, "wordrep.yaml", "strategy: fast\nseed: 11\n")
		out, _, err := execute(t, pathMatrix, "decide", "--config", cfg, "-")
		require.NoError(t, err)
		assert.Contains(t, out, "strategy: fast")
	})

	t.Run("flag overrides config", func(t *testing.T) {
		cfg := writeTemp(t, "wordrep.yaml", "strategy: fast\n")
		out, _, err := execute(t, pathMatrix, "decide", "--config", cfg, "--strategy", "exact", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "strategy: exact")
	})

	t.Run("invalid matrix", func(t *testing.T) {
		_, _, err := execute(t, "0 1\n0 0\n", "decide", "-")
		assert.ErrorContains(t, err, "invalid adjacency matrix")
	})

	t.Run("invalid strategy", func(t *testing.T) {
		_, _, err := execute(t, pathMatrix, "decide", "--strategy", "greedy", "-")
		assert.Error(t, err)
	})
}

func TestInspect(t *testing.T) {
	export := "#states\n0\n1\n2\n3\n#initial\n0\n#accepting\n1\n2\n#alphabet\na\nb\n#transitions" +
		"\n0:a>1\n0:b>2\n1:a>3\n1:b>2\n2:a>1\n2:b>3\n3:a>3\n3:b>3"
	path := writeTemp(t, "final.fsm", export)

	out, _, err := execute(t, "", "inspect", "--minimize", "--word", "abab", path)
	require.NoError(t, err)
	assert.Contains(t, out, "states: 4\n")
	assert.Contains(t, out, "accepting: 2\n")
	assert.Contains(t, out, "alphabet: [a b]\n")
	assert.Contains(t, out, "sink: 3\n")
	assert.Contains(t, out, "minimal states: 4\n")
	assert.Contains(t, out, `accepts "abab": true`)

	out, _, err = execute(t, "", "inspect", "--word", "aab", path)
	require.NoError(t, err)
	assert.Contains(t, out, `accepts "aab": false`)

	bad := writeTemp(t, "bad.fsm", "#states\n0\n#initial\n5\n#accepting\n#alphabet\n#transitions")
	_, _, err = execute(t, "", "inspect", bad)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "wordrep "+version+"\n", out)
}
