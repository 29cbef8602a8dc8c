package records

import (
	"errors"
	"fmt"
	"io"

	errs "github.com/havoc-io/ordered-iter/errors"
	"gopkg.in/yaml.v3"
)

// yamlReader decodes one document at a time and hands out the records of
// the current document one by one.
type yamlReader struct {
	decoder *yaml.Decoder
	pending []*yaml.Node
	record  int
}

func newYAMLReader(r io.Reader) *yamlReader {
	return &yamlReader{decoder: yaml.NewDecoder(r)}
}

func (y *yamlReader) next() (string, string, error) {
	for len(y.pending) == 0 {
		var doc yaml.Node

		if err := y.decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return "", "", io.EOF
			}

			return "", "", fmt.Errorf("%w: %w", errs.ErrMalformedRecord, err)
		}

		root := &doc
		if root.Kind == yaml.DocumentNode {
			if len(root.Content) == 0 {
				continue
			}

			root = root.Content[0]
		}

		switch root.Kind { //nolint:exhaustive
		case yaml.SequenceNode:
			y.pending = root.Content
		case yaml.MappingNode:
			y.pending = []*yaml.Node{root}
		default:
			return "", "", fmt.Errorf("%w: line %d: expected a mapping or a sequence of mappings",
				errs.ErrMalformedRecord, root.Line)
		}
	}

	node := y.pending[0]
	y.pending = y.pending[1:]
	y.record++

	return parseYAMLRecord(node)
}

func (y *yamlReader) position() int {
	return y.record
}

func parseYAMLRecord(node *yaml.Node) (string, string, error) {
	if node.Kind != yaml.MappingNode {
		return "", "", fmt.Errorf("%w: line %d: record is not a mapping", errs.ErrMalformedRecord, node.Line)
	}

	var (
		key, value string
		hasKey     bool
	)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name, field := node.Content[i], node.Content[i+1]

		if field.Kind != yaml.ScalarNode {
			return "", "", fmt.Errorf("%w: line %d: %q must be a scalar", errs.ErrMalformedRecord, field.Line, name.Value)
		}

		switch name.Value {
		case "key":
			key, hasKey = field.Value, true
		case "value":
			value = field.Value
		}
	}

	if !hasKey || key == "" {
		return "", "", fmt.Errorf("%w: line %d: record has no key", errs.ErrMalformedRecord, node.Line)
	}

	return key, value, nil
}
