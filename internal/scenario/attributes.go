package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Attributes is a YAML mapping that keeps document order. Attribute order
// flows through to the emitted configuration blocks, so a plain Go map
// (randomized iteration) cannot carry it.
type Attributes struct {
	Pairs []Pair
}

type Pair struct {
	Key   string
	Value any
}

func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("attributes: expected a mapping, got %s at line %d", node.Tag, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		a.Pairs = append(a.Pairs, Pair{Key: key, Value: value})
	}
	return nil
}

func (a Attributes) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range a.Pairs {
		var key, value yaml.Node
		key.SetString(p.Key)
		if err := value.Encode(p.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &value)
	}
	return node, nil
}

func (a Attributes) IsZero() bool { return len(a.Pairs) == 0 }
