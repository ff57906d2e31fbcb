package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/arloliu/trialloc/types"
)

// File implements a participant source reading identifiers from a text file.
type File struct {
	path string
}

var _ types.ParticipantSource = (*File)(nil)

// NewFile creates a participant source backed by a file.
//
// The file holds one participant identifier per line. Blank lines and lines
// starting with '#' are skipped; surrounding whitespace is trimmed. The file
// is re-read on every List call, so edits between calls are picked up.
//
// Parameters:
//   - path: Path to the participant list file
//
// Returns:
//   - *File: Initialized file source
//
// Example:
//
//	src := source.NewFile("participants.txt")
//	participants, err := src.List(ctx)
func NewFile(path string) *File {
	return &File{path: path}
}

// List reads and returns the participant identifiers from the file.
//
// Parameters:
//   - ctx: Context for cancellation; checked before the read starts
//
// Returns:
//   - []string: Participant identifiers in file order
//   - error: Context or file access error
func (f *File) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open participant file: %w", err)
	}
	defer file.Close()

	var participants []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		participants = append(participants, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read participant file: %w", err)
	}

	return participants, nil
}
