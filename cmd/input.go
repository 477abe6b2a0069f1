package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/BRIKEV/twd-mcp/internal/model"
)

var errEmptyInput = errors.New("empty input")

// readInput returns the contents of path, or stdin when path is "" or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyInput
	}
	return data, nil
}

// decode unmarshals JSON documents with json-iterator so object key order
// survives, and everything else as YAML.
func decode(data []byte, target any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(trimmed, target); err != nil {
			return fmt.Errorf("%w: json: %v", model.ErrInvalidInput, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: yaml: %v", model.ErrInvalidInput, err)
	}
	return nil
}

// isSequence reports whether the document's top-level node is a list.
func isSequence(data []byte) bool {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return false
	}
	return doc.Content[0].Kind == yaml.SequenceNode
}

// decodeCapture accepts either {requests: [...]} or a bare list of requests.
func decodeCapture(data []byte) (model.NetworkCapture, error) {
	var capture model.NetworkCapture
	if isSequence(data) {
		if err := decode(data, &capture.Requests); err != nil {
			return capture, err
		}
		if capture.Requests == nil {
			capture.Requests = []model.NetworkRequest{}
		}
	} else if err := decode(data, &capture); err != nil {
		return capture, err
	}
	return capture, capture.Validate()
}

// decodeRecording reads an {interactions, networkCalls, testName} document.
func decodeRecording(data []byte) (model.Recording, error) {
	var rec model.Recording
	if err := decode(data, &rec); err != nil {
		return rec, err
	}
	return rec, rec.Validate()
}
