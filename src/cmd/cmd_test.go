package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortdemo/src/sort"
	"sortdemo/src/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := NewApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"sortdemo", "--no-agent", "--quiet"}, args...))
	return out.String(), err
}

func TestSortSample(t *testing.T) {
	for _, name := range []string{"bubble", "selection"} {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, "sort", "-s", name)
			require.NoError(t, err)
			assert.Equal(t, "Sorted array: 1 4 2423 5332 13412 23123 233123 412312 412325 5233213\n", out)
		})
	}
}

func TestSortDefaultsToSelection(t *testing.T) {
	out, err := run(t, "sort", "--stats", "2", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "Sorted array: 1 2 3\ncomparisons: 3, swaps: 1\n", out)
}

func TestSortAdjacentSwap(t *testing.T) {
	out, err := run(t, "sort", "-s", "adjacent-swap")
	require.NoError(t, err)
	assert.Equal(t, "Sorted array: 1 4 5332 13412 412325 412312 233123 23123 2423 5233213\n", out)

	out, err = run(t, "sort", "-s", "adjacent-swap", "--", "3", "-2", "1")
	require.NoError(t, err)
	assert.Equal(t, "Sorted array: -2 1 3\n", out)
}

func TestSortErrors(t *testing.T) {
	_, err := run(t, "sort", "-s", "insertion")
	assert.ErrorIs(t, err, sort.ErrUnknownStrategy)

	_, err = run(t, "sort", "1", "x2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 2")

	_, err = run(t, "sort", "-m", "redis://localhost")
	assert.Error(t, err)
}

func TestSortConfigFile(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "sort.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("strategy: bubble\nstats: true\n"), 0644))

	out, err := run(t, "sort", "-c", conf, "3", "2", "1")
	require.NoError(t, err)
	// bubble makes (n-1)^2 comparisons
	assert.Equal(t, "Sorted array: 1 2 3\ncomparisons: 4, swaps: 3\n", out)

	out, err = run(t, "sort", "-c", conf, "-s", "adjacent-swap", "3", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "Sorted array: 2 1 3\ncomparisons: 2, swaps: 2\n", out)
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--no-progress", "--size", "50", "--rounds", "2", "-s", "bubble", "-s", "selection")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "bubble "))
	assert.Contains(t, lines[0], "comparisons: 4,802,")
	assert.Contains(t, lines[0], "sorted: 2/2")
	assert.True(t, strings.HasPrefix(lines[1], "selection "))
	assert.Contains(t, lines[1], "comparisons: 2,450,")
	assert.Contains(t, lines[1], "sorted: 2/2")

	_, err = run(t, "bench", "--no-progress", "--rounds", "0")
	assert.Error(t, err)
	_, err = run(t, "bench", "--no-progress", "-s", "quick")
	assert.ErrorIs(t, err, sort.ErrUnknownStrategy)
}

func TestGlobalFlags(t *testing.T) {
	out, err := run(t, "-V")
	require.NoError(t, err)
	assert.Equal(t, "sortdemo version "+version+"\n", out)

	out, err = run(t, "-v", "sort", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "Sorted array: 1 2\n", out)
}

func TestStrategies(t *testing.T) {
	out, err := run(t, "strategies")
	require.NoError(t, err)
	assert.Equal(t, "bubble         total\nadjacent-swap  partial\nselection      total\n", out)
}

func TestHistory(t *testing.T) {
	metaURL := "sqlite3://" + filepath.Join(t.TempDir(), "runs.db")
	st, err := store.Open(metaURL)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	st.Close()

	for _, name := range []string{"bubble", "adjacent-swap"} {
		_, err = run(t, "sort", "-s", name, "-m", metaURL)
		require.NoError(t, err)
	}

	out, err := run(t, "history", "-m", metaURL)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], " adjacent-swap partial: 1 4 5332")
	assert.Contains(t, lines[1], " bubble sorted: 1 4 2423")

	out, err = run(t, "history", "-m", metaURL, "-s", "bubble", "--tree")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ".", lines[0])
	assert.Equal(t, "└── bubble", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "    └── "))

	_, err = run(t, "history")
	assert.Error(t, err)

	runID := strings.Fields(lines[2])[1]
	out, err = run(t, "show", "-m", metaURL, runID)
	require.NoError(t, err)
	assert.Contains(t, out, "run:         "+runID+"\n")
	assert.Contains(t, out, "strategy:    bubble (sorted)\n")
	assert.Contains(t, out, "input:       1 5332 4 13412 5233213 412325 412312 233123 23123 2423\n")
	assert.Contains(t, out, "output:      1 4 2423 5332 13412 23123 233123 412312 412325 5233213\n")
	assert.Contains(t, out, "comparisons: 81\n")

	_, err = run(t, "show", "-m", metaURL, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run missing not found")

	_, err = run(t, "show", "-m", metaURL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arguments")
}
