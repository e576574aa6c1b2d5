package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"propath/internal/common"
	"propath/options"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// Mode combines the listed mode names.
func (s StringOrArray) Mode() (options.Mode, error) {
	return options.ParseMode(s...)
}

// --- Step YAML methods ---

// UnmarshalYAML records the source line and whether a value key is
// present, so that "value: null" differs from a missing value.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected step mapping, got %v", node.Line, kindName(node.Kind))
	}

	type plain Step

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*s = Step(p)
	s.Line = node.Line

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "value" {
			s.valued = true
		}
	}

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}

	return common.UnknownStr
}
