// Package uxspec defines the aggregate structural description of a site:
// per-page lists of semantic UI components plus detected features. It is the
// artifact handed from classification to generation and is immutable once
// built.
package uxspec

import (
	"encoding/json"
	"fmt"
	"os"
)

// Component type tags as they appear in the persisted JSON.
const (
	TypeClickable = "clickable"
	TypeForm      = "form"
	TypeNav       = "nav"
	TypeList      = "list"
	TypeTable     = "table"
	TypeImages    = "images"
	TypeHeadings  = "headings"
)

// FeatureTag marks a site-level capability detected during classification.
type FeatureTag string

const (
	AuthFormDetected      FeatureTag = "authentication/login_form_detected"
	SearchFeatureDetected FeatureTag = "search_feature_detected"
)

// Component is the tagged variant over the semantic UI component kinds. Each
// concrete type carries a small fixed payload and a `type` discriminator in
// its JSON form.
type Component interface {
	ComponentType() string
}

// Clickable is one button, anchor or input element.
type Clickable struct {
	Type      string   `json:"type"`
	Tag       string   `json:"tag"`
	Role      string   `json:"role"`
	InputType string   `json:"input_type"`
	Text      string   `json:"text"`
	ID        string   `json:"id,omitempty"`
	Classes   []string `json:"classes,omitempty"`
}

func (Clickable) ComponentType() string { return TypeClickable }

// FormField is one input/textarea/select descendant of a form.
type FormField struct {
	Name        string `json:"name,omitempty"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
}

// Form is one form element with its fields.
type Form struct {
	Type   string      `json:"type"`
	ID     string      `json:"id,omitempty"`
	Action string      `json:"action,omitempty"`
	Method string      `json:"method"`
	Fields []FormField `json:"fields"`
}

func (Form) ComponentType() string { return TypeForm }

// Nav is one nav element with up to 30 anchor texts.
type Nav struct {
	Type  string   `json:"type"`
	Links []string `json:"links"`
}

func (Nav) ComponentType() string { return TypeNav }

// List is one ul/ol element with its item count and sample items.
type List struct {
	Type        string   `json:"type"`
	NumItems    int      `json:"num_items"`
	SampleItems []string `json:"sample_items"`
}

func (List) ComponentType() string { return TypeList }

// Table is one table element with header texts and sample rows.
type Table struct {
	Type       string     `json:"type"`
	Headers    []string   `json:"headers"`
	SampleRows [][]string `json:"sample_rows"`
}

func (Table) ComponentType() string { return TypeTable }

// Images is the single aggregate entry over all img elements of a page.
type Images struct {
	Type    string   `json:"type"`
	Count   int      `json:"count"`
	Samples []string `json:"samples"`
}

func (Images) ComponentType() string { return TypeImages }

// Heading is one h1..h4 element.
type Heading struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// Headings is the single aggregate entry over a page's h1..h4 elements.
type Headings struct {
	Type  string    `json:"type"`
	Items []Heading `json:"items"`
}

func (Headings) ComponentType() string { return TypeHeadings }

// PageSpec describes one page: its components in discovery order and any
// detected feature tags.
type PageSpec struct {
	URL        string       `json:"url"`
	Title      string       `json:"title"`
	Components []Component  `json:"components"`
	Features   []FeatureTag `json:"features,omitempty"`
}

// Spec is the whole-site aggregate handed to generation.
type Spec struct {
	Domain string     `json:"domain"`
	Pages  []PageSpec `json:"pages"`
}

// MarshalJSON keeps "components" an array even for pages that classified to
// nothing, such as a page recorded from a failed capture.
func (p PageSpec) MarshalJSON() ([]byte, error) {
	if p.Components == nil {
		p.Components = []Component{}
	}
	type pageAlias PageSpec
	return json.Marshal(pageAlias(p))
}

// UnmarshalJSON decodes the tagged component objects back into their concrete
// types, so a spec persisted by one stage can be reloaded by another.
func (p *PageSpec) UnmarshalJSON(data []byte) error {
	var raw struct {
		URL        string            `json:"url"`
		Title      string            `json:"title"`
		Components []json.RawMessage `json:"components"`
		Features   []FeatureTag      `json:"features"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.URL = raw.URL
	p.Title = raw.Title
	p.Features = raw.Features
	p.Components = nil

	for _, rc := range raw.Components {
		var probe struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(rc, &probe); err != nil {
			return err
		}

		var target Component
		switch probe.Type {
		case TypeClickable:
			target = &Clickable{}
		case TypeForm:
			target = &Form{}
		case TypeNav:
			target = &Nav{}
		case TypeList:
			target = &List{}
		case TypeTable:
			target = &Table{}
		case TypeImages:
			target = &Images{}
		case TypeHeadings:
			target = &Headings{}
		default:
			return fmt.Errorf("unknown component type %q", probe.Type)
		}
		if err := json.Unmarshal(rc, target); err != nil {
			return err
		}
		p.Components = append(p.Components, target)
	}

	return nil
}

// Save writes the spec as indented JSON.
func (s *Spec) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a spec previously written with Save.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Spec
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing ux spec %s: %w", path, err)
	}
	return &s, nil
}
