package scope

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/models"
)

// Codec maps scope ids to bit positions. It is immutable after construction
// and safe for concurrent use.
type Codec struct {
	defs  []models.ScopeDefinition
	index map[string]int
}

// NewCodec builds a codec over defs. The slice is copied.
func NewCodec(defs []models.ScopeDefinition) *Codec {
	c := &Codec{
		defs:  slices.Clone(defs),
		index: make(map[string]int, len(defs)),
	}
	for i, d := range c.defs {
		if _, dup := c.index[d.ID]; !dup {
			c.index[d.ID] = i
		}
	}
	return c
}

// Default returns a codec over [DefaultTable].
func Default() *Codec {
	return NewCodec(DefaultTable)
}

// Len is the number of known scopes and the length of every encoded string.
func (c *Codec) Len() int {
	return len(c.defs)
}

// Definitions returns a copy of the table.
func (c *Codec) Definitions() []models.ScopeDefinition {
	return slices.Clone(c.defs)
}

// Encode emits one '0'/'1' per known scope. Unknown ids are ignored.
func (c *Codec) Encode(granted []string) string {
	bits := make([]byte, len(c.defs))
	for i := range bits {
		bits[i] = '0'
	}
	for _, id := range granted {
		if i, ok := c.index[id]; ok {
			bits[i] = '1'
		}
	}
	return string(bits)
}

// Decode returns the ids whose bit is '1', in table order. Missing trailing
// positions count as '0'; characters past the table length are ignored.
func (c *Codec) Decode(bits string) []string {
	// positions are characters; a multi-byte rune is one ungranted position
	chars := []rune(bits)
	ids := make([]string, 0, len(c.defs))
	for i, d := range c.defs {
		if i < len(chars) && chars[i] == '1' {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// FilterValid keeps the known ids, preserving input order.
func (c *Codec) FilterValid(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := c.index[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Names maps ids to display names in table order.
func (c *Codec) Names(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, d := range c.defs {
		if slices.Contains(ids, d.ID) {
			names = append(names, d.DisplayName)
		}
	}
	return names
}

// Describe looks up the description of a scope by its display name.
func (c *Codec) Describe(displayName string) (string, bool) {
	for _, d := range c.defs {
		if d.DisplayName == displayName {
			return d.Description, true
		}
	}
	return "", false
}

// Normalize re-encodes bits through the table, dropping anything the table
// does not know and padding to full length.
func (c *Codec) Normalize(bits string) string {
	return c.Encode(c.FilterValid(c.Decode(bits)))
}

// ParseList splits a user-typed or query-string scope list on commas and
// whitespace. Empty items are dropped; validity is not checked.
func ParseList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '+'
	})
}
