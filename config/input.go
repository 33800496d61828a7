// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input selects which data set a run reads: the small worked example or the
// full puzzle input.
type Input int

const (
	// InputActual reads the full input. It is the default.
	InputActual Input = iota
	// InputTest reads the worked example.
	InputTest
)

// ParseInput accepts "test" or "actual" in any letter case.
func ParseInput(s string) (Input, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "test":
		return InputTest, nil
	case "actual":
		return InputActual, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownInput, s)
	}
}

// String returns "test" or "actual".
func (i Input) String() string {
	switch i {
	case InputTest:
		return "test"
	case InputActual:
		return "actual"
	default:
		return fmt.Sprintf("Input(%d)", int(i))
	}
}

// MarshalYAML writes the input as its name.
func (i Input) MarshalYAML() (interface{}, error) {
	return i.String(), nil
}

// UnmarshalYAML reads an input name.
func (i *Input) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	in, err := ParseInput(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*i = in

	return nil
}
