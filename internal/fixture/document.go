package fixture

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a layout document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the document format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported document extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Document is one layout scenario: a node tree and the space it gets.
type Document struct {
	Name string `yaml:"name" toml:"name"`
	// Width and Height are the available space: a number,
	// "min-content" or "max-content". Omitted means max-content.
	Width  any `yaml:"width" toml:"width"`
	Height any `yaml:"height" toml:"height"`
	// Rounding overrides the tree's rounding setting when set.
	Rounding *bool    `yaml:"rounding" toml:"rounding"`
	Root     NodeSpec `yaml:"root" toml:"root"`
}

// NodeSpec describes a node and its subtree.
type NodeSpec struct {
	ID       string       `yaml:"id" toml:"id"`
	Style    StyleSpec    `yaml:"style" toml:"style"`
	Text     string       `yaml:"text" toml:"text"`
	Measure  *MeasureSpec `yaml:"measure" toml:"measure"`
	Children []NodeSpec   `yaml:"children" toml:"children"`
}

// MeasureSpec gives a leaf fixed content dimensions. MinWidth, when set,
// is the narrowest the content can get; narrower widths grow the height
// as if the content wrapped.
type MeasureSpec struct {
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
	MinWidth float64 `yaml:"min_width" toml:"min_width"`
}

// StyleSpec is the textual form of a layout style. Every field is
// optional; omitted fields keep their defaults.
type StyleSpec struct {
	Display        string   `yaml:"display" toml:"display"`
	BoxSizing      string   `yaml:"box_sizing" toml:"box_sizing"`
	Position       string   `yaml:"position" toml:"position"`
	Overflow       string   `yaml:"overflow" toml:"overflow"`
	OverflowX      string   `yaml:"overflow_x" toml:"overflow_x"`
	OverflowY      string   `yaml:"overflow_y" toml:"overflow_y"`
	ScrollbarWidth *float64 `yaml:"scrollbar_width" toml:"scrollbar_width"`

	Width       any      `yaml:"width" toml:"width"`
	Height      any      `yaml:"height" toml:"height"`
	MinWidth    any      `yaml:"min_width" toml:"min_width"`
	MinHeight   any      `yaml:"min_height" toml:"min_height"`
	MaxWidth    any      `yaml:"max_width" toml:"max_width"`
	MaxHeight   any      `yaml:"max_height" toml:"max_height"`
	AspectRatio *float64 `yaml:"aspect_ratio" toml:"aspect_ratio"`

	// Box edges take one to four values in CSS shorthand order.
	Inset   any `yaml:"inset" toml:"inset"`
	Margin  any `yaml:"margin" toml:"margin"`
	Padding any `yaml:"padding" toml:"padding"`
	Border  any `yaml:"border" toml:"border"`

	Gap       any `yaml:"gap" toml:"gap"`
	RowGap    any `yaml:"row_gap" toml:"row_gap"`
	ColumnGap any `yaml:"column_gap" toml:"column_gap"`

	AlignItems     string `yaml:"align_items" toml:"align_items"`
	JustifyItems   string `yaml:"justify_items" toml:"justify_items"`
	AlignSelf      string `yaml:"align_self" toml:"align_self"`
	JustifySelf    string `yaml:"justify_self" toml:"justify_self"`
	AlignContent   string `yaml:"align_content" toml:"align_content"`
	JustifyContent string `yaml:"justify_content" toml:"justify_content"`

	FlexDirection string   `yaml:"flex_direction" toml:"flex_direction"`
	FlexWrap      string   `yaml:"flex_wrap" toml:"flex_wrap"`
	FlexGrow      *float64 `yaml:"flex_grow" toml:"flex_grow"`
	FlexShrink    *float64 `yaml:"flex_shrink" toml:"flex_shrink"`
	FlexBasis     any      `yaml:"flex_basis" toml:"flex_basis"`

	GridTemplateRows    string `yaml:"grid_template_rows" toml:"grid_template_rows"`
	GridTemplateColumns string `yaml:"grid_template_columns" toml:"grid_template_columns"`
	GridAutoRows        string `yaml:"grid_auto_rows" toml:"grid_auto_rows"`
	GridAutoColumns     string `yaml:"grid_auto_columns" toml:"grid_auto_columns"`
	GridAutoFlow        string `yaml:"grid_auto_flow" toml:"grid_auto_flow"`
	GridRow             string `yaml:"grid_row" toml:"grid_row"`
	GridColumn          string `yaml:"grid_column" toml:"grid_column"`
}

// Decode parses a document in the given format. Unknown fields are
// rejected so typos surface instead of silently using defaults.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml document: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse toml document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
	return &doc, nil
}

// Load reads and decodes the document at path. The document name
// defaults to the file name.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}
