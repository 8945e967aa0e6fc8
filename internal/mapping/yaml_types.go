package mapping

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	nullTag = "!!null"
	strTag  = "!!str"
)

// --- KeyPairs YAML methods ---

// UnmarshalYAML decodes a mapping node, keeping the document order.
func (p *KeyPairs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of model key to wire key", node.Line)
	}

	pairs := make(KeyPairs, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var pair KeyPair

		if err := node.Content[i].Decode(&pair.Model); err != nil {
			return fmt.Errorf("line %d: invalid model key: %w", node.Content[i].Line, err)
		}

		if err := node.Content[i+1].Decode(&pair.Wire); err != nil {
			return fmt.Errorf("line %d: invalid wire key for %q: %w", node.Content[i+1].Line, pair.Model, err)
		}

		pairs = append(pairs, pair)
	}

	*p = pairs

	return nil
}

// MarshalYAML encodes the pairs as a mapping node in order.
func (p KeyPairs) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, pair := range p {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: pair.Model},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: pair.Wire},
		)
	}

	return node, nil
}

// --- EntryDef YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for EntryDef.
// Accepts:
//   - Map: {model: id, wire: id}
//   - Map: {model: isAdmin, to_model: SplitAdmin, to_wire: null}
//   - Pair: [id, id]
//   - Triple: [isAdmin, SplitAdmin, null]
func (e *EntryDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		return e.fromMapping(node)
	case yaml.SequenceNode:
		return e.fromSequence(node)
	default:
		return fmt.Errorf("line %d: expected entry map or list, got %s", node.Line, kindName(node.Kind))
	}
}

func (e *EntryDef) fromMapping(node *yaml.Node) error {
	var out EntryDef

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var err error

		switch keyNode.Value {
		case "model":
			out.Model, err = scalarString(valNode)
		case "wire":
			out.Wire, err = scalarString(valNode)
		case "to_model":
			out.Transform = true
			out.ToModel, err = nullableString(valNode)
		case "to_wire":
			out.Transform = true
			out.ToWire, err = nullableString(valNode)
		case "description":
			out.Description, err = scalarString(valNode)
		default:
			err = fmt.Errorf("unknown entry field %q", keyNode.Value)
		}

		if err != nil {
			return fmt.Errorf("line %d: %w", keyNode.Line, err)
		}
	}

	*e = out

	return nil
}

func (e *EntryDef) fromSequence(node *yaml.Node) error {
	items := node.Content

	switch len(items) {
	case 2:
		model, err := scalarString(items[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		wire, err := scalarString(items[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*e = DirectDef(model, wire)

		return nil

	case 3:
		model, err := scalarString(items[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		toModel, err := nullableString(items[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		toWire, err := nullableString(items[2])
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*e = TransformEntryDef(model, toModel, toWire)

		return nil

	default:
		return fmt.Errorf("line %d: entry list must have 2 (direct) or 3 (transform) items, got %d",
			node.Line, len(items))
	}
}

type directYAML struct {
	Model       string `yaml:"model"`
	Wire        string `yaml:"wire"`
	Description string `yaml:"description,omitempty"`
}

type transformYAML struct {
	Model       string  `yaml:"model"`
	ToModel     *string `yaml:"to_model"`
	ToWire      *string `yaml:"to_wire"`
	Description string  `yaml:"description,omitempty"`
}

// MarshalYAML writes direct entries as {model, wire} and transform entries
// as {model, to_model, to_wire} with null for unsupported directions.
func (e EntryDef) MarshalYAML() (any, error) {
	if !e.Transform {
		return directYAML{Model: e.Model, Wire: e.Wire, Description: e.Description}, nil
	}

	return transformYAML{
		Model:       e.Model,
		ToModel:     optional(e.ToModel),
		ToWire:      optional(e.ToWire),
		Description: e.Description,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func scalarString(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() == nullTag {
		return "", errors.New("expected a string")
	}

	return node.Value, nil
}

func nullableString(node *yaml.Node) (string, error) {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == nullTag {
		return "", nil
	}

	return scalarString(node)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "map"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
