// Package grammarfile loads grammars declared in YAML or TOML and compiles
// them through grammar.Builder. Results are generic Node trees.
package grammarfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format int

const (
	YAML Format = iota + 1
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%s: unsupported grammar file extension %q", path, ext)
	}
}

// File is the declarative form of a grammar:
//
//	start: expr
//	ignore: ["@NL"]
//	rules:
//	  expr:
//	    - from: ["$term"]
//	      binary_loop: [["@ADD", "@SUB"], "$term"]
//	      fold: binary_op
//	    - from: ["$term"]
//	      pass: true
//
// A nested list inside from, binary_loop or block_loop is an either.
type File struct {
	Start   string                     `yaml:"start" toml:"start"`
	Ignore  []string                   `yaml:"ignore" toml:"ignore"`
	Options Options                    `yaml:"options" toml:"options"`
	Rules   map[string][]VariationSpec `yaml:"rules" toml:"rules"`
}

type Options struct {
	MaxDepth int `yaml:"max_depth" toml:"max_depth"`
}

// VariationSpec declares one variation. Exactly one of Pass, Select, Node
// and Fold must be set.
type VariationSpec struct {
	From       []interface{} `yaml:"from" toml:"from"`
	BinaryLoop []interface{} `yaml:"binary_loop" toml:"binary_loop"`
	BlockLoop  []interface{} `yaml:"block_loop" toml:"block_loop"`
	// Ignore overrides the global ignore set. An empty list ignores nothing.
	Ignore          *[]string `yaml:"ignore" toml:"ignore"`
	PreventRollback bool      `yaml:"prevent_rollback" toml:"prevent_rollback"`

	Pass   bool   `yaml:"pass" toml:"pass"`
	Select *int   `yaml:"select" toml:"select"`
	Node   string `yaml:"node" toml:"node"`
	Fold   string `yaml:"fold" toml:"fold"`
}

// Load reads a grammar file, choosing the format from its extension.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses a grammar file. Unknown keys are rejected.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("toml: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
	return &f, nil
}
