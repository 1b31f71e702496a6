// Package taxonomy holds the Scopus ASJC subject-field table used for
// classification. The registry is read-only after construction.
package taxonomy

import (
	"fmt"
	"strings"
)

type Field struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Group is a discipline-level bucket of specific four-digit fields, kept in
// the order the prompt renders them.
type Group struct {
	Name   string
	Fields []Field
}

type Registry struct {
	groups []Group
	byCode map[string]Field
	byName map[string]Field
	names  []string
}

// PlaceholderCode is the fallback field for padding and error results.
const (
	PlaceholderCode = "1000"
	PlaceholderName = "Multidisciplinary"
)

func New(groups []Group) *Registry {
	r := &Registry{
		groups: groups,
		byCode: map[string]Field{},
		byName: map[string]Field{},
	}
	for _, g := range groups {
		for _, f := range g.Fields {
			if _, ok := r.byCode[f.Code]; ok {
				continue
			}
			r.byCode[f.Code] = f
			r.byName[strings.ToLower(f.Name)] = f
			r.names = append(r.names, f.Name)
		}
	}
	return r
}

// Default returns the registry of specific ASJC fields. General codes ending
// in "00" are deliberately absent; the prompt forbids them.
func Default() *Registry {
	return New(defaultGroups)
}

func (r *Registry) Groups() []Group {
	return r.groups
}

func (r *Registry) Lookup(code string) (Field, bool) {
	f, ok := r.byCode[code]
	return f, ok
}

// Name renders the human-readable name for a code. Unknown codes keep the
// code visible so downstream consumers can flag them.
func (r *Registry) Name(code string) string {
	if f, ok := r.byCode[code]; ok {
		return f.Name
	}
	return fmt.Sprintf("Unknown (%s)", code)
}

// CanonicalNames returns field names in registry order, for freeform-response
// matching.
func (r *Registry) CanonicalNames() []string {
	return r.names
}

// MatchName resolves free text to a field by case-insensitive substring
// containment. First match in registry order wins; ambiguous inputs (e.g.
// "Medicine") resolve to the earliest listed field.
func (r *Registry) MatchName(text string) (Field, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return Field{}, false
	}
	if f, ok := r.byName[lowered]; ok {
		return f, true
	}
	for _, name := range r.names {
		if strings.Contains(lowered, strings.ToLower(name)) {
			return r.byName[strings.ToLower(name)], true
		}
	}
	return Field{}, false
}

func (r *Registry) Placeholder() Field {
	return Field{Code: PlaceholderCode, Name: PlaceholderName}
}

func (r *Registry) Len() int {
	return len(r.names)
}
