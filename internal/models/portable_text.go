package models

import (
	"database/sql/driver"
	"strings"
)

// PortableText is the block-tree representation of rich text content:
// a list of blocks, each holding styled spans and optional mark
// definitions (links). It is stored as jsonb and rendered by the site,
// keeping authoring decoupled from any markup language.
type PortableText []Block

type Block struct {
	Key      string    `json:"key"`
	Type     string    `json:"type"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"list_item,omitempty"`
	Level    int       `json:"level,omitempty"`
	MarkDefs []MarkDef `json:"mark_defs,omitempty"`
	Children []Span    `json:"children"`
}

type Span struct {
	Key   string   `json:"key"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

type MarkDef struct {
	Key  string `json:"key"`
	Type string `json:"type"`
	Href string `json:"href,omitempty"`
}

func (pt PortableText) Value() (driver.Value, error) {
	if pt == nil {
		return nil, nil
	}
	return valueJSON(pt)
}

func (pt *PortableText) Scan(value any) error {
	return scanJSON(value, pt)
}

func (PortableText) GormDataType() string {
	return "jsonb"
}

// PlainText flattens the block tree into newline-joined text, dropping
// styles, marks and empty blocks.
func (pt PortableText) PlainText() string {
	var parts []string
	for _, block := range pt {
		var b strings.Builder
		for _, span := range block.Children {
			b.WriteString(span.Text)
		}
		if s := b.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// PlainBlock builds a single paragraph block around text. Handy for seeds
// and tests.
func PlainBlock(key, text string) Block {
	return Block{
		Key:      key,
		Type:     "block",
		Style:    "normal",
		Children: []Span{{Key: key + "-0", Text: text}},
	}
}
