package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/shpandrak/shpancursor/cursor"
	"github.com/stretchr/testify/require"
)

type characterInfo struct {
	Name   string
	Height float64
}

func parseCharacterLine(line []byte) characterInfo {
	parts := strings.Split(string(line), ",")
	height, _ := strconv.ParseFloat(parts[1], 64)
	return characterInfo{Name: parts[0], Height: height}
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))
	return filePath
}

func TestStreamLinesFromFile(t *testing.T) {
	filePath := writeFile(t, "xmen-heights.csv", "name,height\nWolverine,1.60\nColossus,2.26\nStorm,1.80\n")

	characters := cursor.Map(
		// Skip the header
		StreamLinesFromFile(filePath).RemoveFirst(),
		parseCharacterLine,
	)

	tallest := characterInfo{Name: "None"}
	characters.Consume(func(c characterInfo) {
		if c.Height > tallest.Height {
			tallest = c
		}
	})
	require.Equal(t, "Colossus", tallest.Name)
	require.NoError(t, characters.Err())

	// Lines already read are navigable backwards
	last, err := characters.Backward()
	require.NoError(t, err)
	require.Equal(t, "Storm", last.Name)
}

func TestStreamLinesFromFile_Reversed(t *testing.T) {
	filePath := writeFile(t, "lines.txt", "1\n2\n3\n")
	lines := cursor.Map(StreamLinesFromFile(filePath).Reverse(), func(b []byte) string {
		return string(b)
	})
	require.Equal(t, []string{"3", "2", "1"}, lines.Entries())
}

func TestStreamLinesFromFile_MissingFileIsEmpty(t *testing.T) {
	s := StreamLinesFromFile(filepath.Join(t.TempDir(), "no-such-file"))
	require.True(t, s.IsEmpty())
	require.NoError(t, s.Err())
}

func TestStreamLinesFromFile_LinesAreNotOverwritten(t *testing.T) {
	var content strings.Builder
	for i := 0; i < 1000; i++ {
		content.WriteString(fmt.Sprintf("line %d\n", i))
	}
	s := StreamLinesFromFile(writeFile(t, "many.txt", content.String()))
	entries := s.Entries()
	require.Len(t, entries, 1000)
	require.Equal(t, "line 0", string(entries[0]))
	require.Equal(t, "line 999", string(entries[999]))
}
