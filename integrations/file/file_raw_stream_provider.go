package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/shpandrak/shpancursor/cursor"
	"io"
	"log/slog"
	"os"
	"slices"
)

type fsScanner interface {
	Err() error
	Bytes() []byte
	Scan() bool
}

// rawFileStreamProvider reads the lines of a file one by one.
type rawFileStreamProvider struct {
	filePath              string
	file                  *os.File
	scanner               fsScanner
	fileMissingHenceEmpty bool
}

// StreamLinesFromFile creates a lazy stream over the lines of a file.
// Lines already read are kept, so the stream can be navigated backwards (or reversed) without re-reading.
// A missing file is an empty stream.
func StreamLinesFromFile(filePath string) cursor.Stream[[]byte] {
	fsp := &rawFileStreamProvider{filePath: filePath}
	return cursor.FromProvider(
		context.Background(),
		fsp.emit,
		cursor.WithOpenFuncOption(fsp.open),
		cursor.WithCloseFuncOption(fsp.close),
	)
}

// open opens the file for reading and initializes the scanner.
func (fsp *rawFileStreamProvider) open(_ context.Context) error {
	file, err := os.Open(fsp.filePath)
	if err != nil {

		// If no file, that's fine, it means stream is empty
		if errors.Is(err, os.ErrNotExist) {
			fsp.fileMissingHenceEmpty = true
			return nil
		}
		return err
	}

	fsp.file = file
	fsp.scanner = bufio.NewScanner(file)
	return nil
}

// close closes the file and releases any resources.
func (fsp *rawFileStreamProvider) close() {
	closeFile(fsp.file)
	fsp.file = nil
	fsp.scanner = nil
}

// emit reads the next line from the file.
func (fsp *rawFileStreamProvider) emit(ctx context.Context) ([]byte, error) {
	if fsp.scanner == nil {
		// If we're empty, just return EOF to mark that nothing is here
		if fsp.fileMissingHenceEmpty {
			return nil, io.EOF
		}

		// Otherwise, it means emit is somehow called after close, which is impossible, but an error
		return nil, os.ErrClosed
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if fsp.scanner.Scan() {
		// The scanner reuses its buffer, and the stream keeps every line
		return slices.Clone(fsp.scanner.Bytes()), nil
	}
	if err := fsp.scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading stream file %s: %w", fsp.filePath, err)
	}
	return nil, io.EOF
}

func closeFile(file *os.File) {
	if file != nil {
		err := file.Close()
		if err != nil {
			slog.Warn(fmt.Sprintf("error closing stream file %s: %v", file.Name(), err))
		}
	}
}
