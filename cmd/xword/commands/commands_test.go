package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dyluth/xword/internal/render"
	"github.com/dyluth/xword/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func miniPath(t *testing.T) string {
	t.Helper()
	return testutil.WritePuz(t, testutil.MiniFixture())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestShow(t *testing.T) {
	t.Run("blank grid with numbers", func(t *testing.T) {
		res := execute(t, "", "show", miniPath(t))
		require.NoError(t, res.err)

		assert.Contains(t, res.stdout, "Mini\n\n")
		assert.Contains(t, res.stdout, "│  1│   │  2│")
		assert.Contains(t, res.stdout, "Across:\n\n1. Feline\n3. Hive dwellers\n")
		assert.Contains(t, res.stdout, "Down:\n\n1. Taxi\n2. Also, briefly\n")
	})

	t.Run("solution", func(t *testing.T) {
		res := execute(t, "", "show", "--solution", miniPath(t))
		require.NoError(t, res.err)

		assert.Contains(t, res.stdout, "│ C │ A │ T │")
		assert.Contains(t, res.stdout, "│ A │███│ O │")
	})

	t.Run("config hides numbers and reveals answers", func(t *testing.T) {
		cfgPath := writeFile(t, "xword.yml", "version: \"1.0\"\ndisplay:\n  show_numbers: false\n  reveal: true\n")
		res := execute(t, "", "--config", cfgPath, "show", miniPath(t))
		require.NoError(t, res.err)

		assert.Contains(t, res.stdout, "│ B │ E │ E │")
	})

	t.Run("scrambled puzzle warns", func(t *testing.T) {
		fixture := testutil.MiniFixture()
		fixture.ScrambledTag = 0x0004
		res := execute(t, "", "show", testutil.WritePuz(t, fixture))
		require.NoError(t, res.err)

		assert.Contains(t, res.stdout, "is scrambled: answers cannot be checked")
	})
}

func TestDecodeFailures(t *testing.T) {
	full := testutil.BuildPuz(testutil.MiniFixture())

	badMagic := append([]byte(nil), full...)
	copy(badMagic[2:], "ACROSS&DOWM")

	fewerClues := testutil.MiniFixture()
	fewerClues.Clues = fewerClues.Clues[:3]

	testCases := []struct {
		name       string
		path       func(t *testing.T) string
		wantErr    string
		wantStderr []string
	}{
		{
			name:       "missing file",
			path:       func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.puz") },
			wantErr:    "puzzle file not found",
			wantStderr: []string{"No file exists at"},
		},
		{
			name:       "truncated header",
			path:       func(t *testing.T) string { return writeFile(t, "short.puz", string(full[:0x2c])) },
			wantErr:    "puzzle file is truncated",
			wantStderr: []string{"Field: width", "Offset: 0x2c"},
		},
		{
			name:       "truncated strings",
			path:       func(t *testing.T) string { return writeFile(t, "short.puz", string(full[:len(full)-1])) },
			wantErr:    "puzzle file is truncated",
			wantStderr: []string{"Field: notes"},
		},
		{
			name:       "bad magic",
			path:       func(t *testing.T) string { return writeFile(t, "bad.puz", string(badMagic)) },
			wantErr:    "not an Across Lite puzzle",
			wantStderr: []string{"Field: file magic", "Offset: 0x02"},
		},
		{
			name:       "clue count mismatch",
			path:       func(t *testing.T) string { return testutil.WritePuz(t, fewerClues) },
			wantErr:    "puzzle clues do not match the grid",
			wantStderr: []string{"3 clue strings, 4 words in grid"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := execute(t, "", "info", tc.path(t))
			require.Error(t, res.err)
			assert.Equal(t, tc.wantErr, res.err.Error())
			for _, want := range tc.wantStderr {
				assert.Contains(t, res.stderr, want)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		res := execute(t, "", "info", miniPath(t))
		require.NoError(t, res.err)

		for _, want := range []string{"Mini", "Tester", "3x3", "1.3", "Have fun"} {
			assert.Contains(t, res.stdout, want)
		}
	})

	t.Run("json", func(t *testing.T) {
		res := execute(t, "", "info", "--output", "json", miniPath(t))
		require.NoError(t, res.err)

		var rec render.PuzzleRecord
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &rec))
		assert.Equal(t, "Tester", rec.Author)
		assert.Equal(t, []string{"___", "_._", "___"}, rec.Grid)
	})

	t.Run("rejects jsonl", func(t *testing.T) {
		res := execute(t, "", "info", "--output", "jsonl", miniPath(t))
		assert.EqualError(t, res.err, "invalid output format")
	})
}

func TestClues(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		res := execute(t, "", "clues", miniPath(t))
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Hive dwellers")
	})

	t.Run("jsonl", func(t *testing.T) {
		res := execute(t, "", "clues", "-o", "jsonl", miniPath(t))
		require.NoError(t, res.err)

		lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
		require.Len(t, lines, 4)
		var rec render.ClueRecord
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
		assert.Equal(t, render.ClueRecord{Index: 1, Number: 1, Direction: "Down", Row: 0, Col: 0, Text: "Taxi"}, rec)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		res := execute(t, "", "clues", "-o", "xml", miniPath(t))
		assert.EqualError(t, res.err, "invalid output format")
		assert.Contains(t, res.stderr, "Valid formats: default, jsonl")
	})
}

func TestPlay(t *testing.T) {
	t.Run("solves the puzzle from stdin", func(t *testing.T) {
		res := execute(t, "type cat\na o\ntype bee\n", "play", miniPath(t))
		require.NoError(t, res.err)

		assert.Contains(t, res.stdout, "→ 1 Across: Feline")
		assert.Contains(t, res.stdout, "│ C │ A │ T │")
		assert.Contains(t, res.stdout, "✓ Solved! All 8 cells correct")
	})

	t.Run("quit ends the session", func(t *testing.T) {
		res := execute(t, "x\nbogus\nquit\nc\n", "play", miniPath(t))
		require.NoError(t, res.err)

		assert.Contains(t, res.stdout, "line 2: unknown key: bogus")
		assert.Contains(t, res.stdout, "Filled 1 of 8 cells, 0 correct")
	})

	t.Run("script file and start direction", func(t *testing.T) {
		script := writeFile(t, "moves.txt", "# fill the first column\ntype cab\n")
		res := execute(t, "", "play", "--quiet", "--direction", "down", "--script", script, miniPath(t))
		require.NoError(t, res.err)

		// Typing off the bottom of column 0 wraps to (0,1), which starts no
		// down word.
		assert.Contains(t, res.stdout, "│ C │[ ]│  2│")
		assert.Contains(t, res.stdout, "→ no clue for (0,1) Down")
		assert.Contains(t, res.stdout, "Filled 3 of 8 cells, 3 correct")
	})

	t.Run("resumes saved player state", func(t *testing.T) {
		fixture := testutil.MiniFixture()
		fixture.State = []string{"CX-", "-.-", "---"}
		res := execute(t, "", "play", "--quiet", "--seed", "saved", testutil.WritePuz(t, fixture))
		require.NoError(t, res.err)

		assert.Contains(t, res.stdout, "│[C]│ X │  2│")
		assert.Contains(t, res.stdout, "Filled 2 of 8 cells, 1 correct")
	})

	t.Run("rejects unknown seed", func(t *testing.T) {
		res := execute(t, "", "play", "--seed", "solution", miniPath(t))
		assert.EqualError(t, res.err, "failed to start session")
	})

	t.Run("rejects all-black grid", func(t *testing.T) {
		fixture := testutil.PuzFixture{Solution: []string{"..", ".."}, Title: "Void"}
		res := execute(t, "", "play", testutil.WritePuz(t, fixture))
		assert.EqualError(t, res.err, "puzzle cannot be played")
	})

	t.Run("missing script", func(t *testing.T) {
		res := execute(t, "", "play", "--script", filepath.Join(t.TempDir(), "none.txt"), miniPath(t))
		assert.EqualError(t, res.err, "failed to open script")
	})
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xword.yml")

	res := execute(t, "", "init", "--path", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "✓ Created "+path)

	res = execute(t, "", "init", "--path", path)
	assert.EqualError(t, res.err, "config already initialized")
	assert.Contains(t, res.stderr, "xword init --force")

	res = execute(t, "", "init", "--force", "--path", path)
	require.NoError(t, res.err)

	res = execute(t, "", "--config", path, "show", miniPath(t))
	require.NoError(t, res.err)
}
