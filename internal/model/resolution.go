package model

import (
	"fmt"
	"strings"
)

// ResolutionOption is a named output preset offered by the merge form
type ResolutionOption struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Resolution string `json:"resolution"` // WxH, sent verbatim to the merge endpoint
}

// Label returns the text shown in pickers, e.g. "Full HD (1920x1080)"
func (r ResolutionOption) Label() string {
	return fmt.Sprintf("%s (%s)", r.Name, r.Resolution)
}

// Catalog is an immutable, ordered list of resolution presets.
// The zero value is an empty catalog.
type Catalog struct {
	options []ResolutionOption
}

// NewCatalog creates a catalog holding a private copy of options
func NewCatalog(options ...ResolutionOption) Catalog {
	c := Catalog{options: make([]ResolutionOption, len(options))}
	copy(c.options, options)
	return c
}

// DefaultCatalog returns the four built-in presets
func DefaultCatalog() Catalog {
	return NewCatalog(
		ResolutionOption{ID: 1, Name: "Standard", Resolution: "640x480"},
		ResolutionOption{ID: 2, Name: "SD", Resolution: "720x480"},
		ResolutionOption{ID: 3, Name: "Full HD", Resolution: "1920x1080"},
		ResolutionOption{ID: 4, Name: "HD", Resolution: "1280x720"},
	)
}

// Options returns a copy of the presets in catalog order
func (c Catalog) Options() []ResolutionOption {
	out := make([]ResolutionOption, len(c.options))
	copy(out, c.options)
	return out
}

// Len returns the number of presets
func (c Catalog) Len() int {
	return len(c.options)
}

// Default returns the resolution string of the first preset, or "" when empty
func (c Catalog) Default() string {
	if len(c.options) == 0 {
		return ""
	}
	return c.options[0].Resolution
}

// Lookup finds a preset by resolution string or by display name (case-insensitive)
func (c Catalog) Lookup(key string) (ResolutionOption, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return ResolutionOption{}, false
	}
	for _, opt := range c.options {
		if opt.Resolution == key {
			return opt, true
		}
	}
	for _, opt := range c.options {
		if strings.EqualFold(opt.Name, key) {
			return opt, true
		}
	}
	return ResolutionOption{}, false
}

// Labels returns picker labels in catalog order
func (c Catalog) Labels() []string {
	labels := make([]string, 0, len(c.options))
	for _, opt := range c.options {
		labels = append(labels, opt.Label())
	}
	return labels
}

// ByLabel maps a picker label back to its preset
func (c Catalog) ByLabel(label string) (ResolutionOption, bool) {
	for _, opt := range c.options {
		if opt.Label() == label {
			return opt, true
		}
	}
	return ResolutionOption{}, false
}
