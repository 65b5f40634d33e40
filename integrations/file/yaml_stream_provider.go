package file

import (
	"context"
	"errors"
	"fmt"
	"github.com/shpandrak/shpancursor/cursor"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

// StreamYamlDocuments creates a lazy stream decoding every document of a multi-document YAML input into T.
func StreamYamlDocuments[T any](r io.Reader) cursor.Stream[T] {
	dec := yaml.NewDecoder(r)
	return cursor.FromProvider(context.Background(), func(_ context.Context) (T, error) {
		return decodeYamlDocument[T](dec)
	})
}

// StreamYamlFromFile creates a lazy stream over the YAML documents of a file, the file is opened on the first
// read and closed once all documents were read. A missing file is an error, reported by the stream's Err.
func StreamYamlFromFile[T any](filePath string) cursor.Stream[T] {
	var file *os.File
	var dec *yaml.Decoder
	return cursor.FromProvider(
		context.Background(),
		func(_ context.Context) (T, error) {
			return decodeYamlDocument[T](dec)
		},
		cursor.WithOpenFuncOption(func(_ context.Context) error {
			var err error
			file, err = os.Open(filePath)
			if err != nil {
				return err
			}
			dec = yaml.NewDecoder(file)
			return nil
		}),
		cursor.WithCloseFuncOption(func() {
			closeFile(file)
			file = nil
		}),
	)
}

func decodeYamlDocument[T any](dec *yaml.Decoder) (T, error) {
	var ret T
	err := dec.Decode(&ret)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ret, io.EOF
		}
		return ret, fmt.Errorf("failed decoding yaml document: %w", err)
	}
	return ret, nil
}
