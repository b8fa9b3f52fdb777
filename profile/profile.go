package profile

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/suveshpratapa/tlv8/errors"
)

// Type declares how a tagged element should be decoded.
type Type string

const (
	TypeUint      Type = "uint"
	TypeInt       Type = "int"
	TypeString    Type = "string"
	TypeBytes     Type = "bytes"
	TypeFloat     Type = "float"
	TypeBool      Type = "bool"
	TypeContainer Type = "container"
)

func validType(t Type) bool {
	switch t {
	case TypeUint, TypeInt, TypeString, TypeBytes, TypeFloat, TypeBool, TypeContainer:
		return true
	}
	return false
}

// Entry describes one tag within a container context.
type Entry struct {
	Tag     uint8
	Name    string
	Type    Type
	Context string // child context name, set for container entries
}

// Profile maps container contexts to the tags they may carry. TLV8 tags
// are contextual, so the same tag byte means different things at different
// nesting levels; a profile names one context per level.
type Profile struct {
	contexts map[string]map[uint8]Entry
}

// RootContext is the conventional name of the top-level context.
const RootContext = "root"

type fileProfile struct {
	Version  int           `toml:"version"`
	Contexts []fileContext `toml:"context"`
}

type fileContext struct {
	Name string    `toml:"name"`
	Tags []fileTag `toml:"tag"`
}

type fileTag struct {
	Tag     int    `toml:"tag"`
	Name    string `toml:"name"`
	Type    string `toml:"type"`
	Context string `toml:"context"`
}

// Load reads and parses a TOML profile from path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read profile", err)
	}
	return Parse(data)
}

// Parse parses a TOML profile document.
func Parse(data []byte) (*Profile, error) {
	var f fileProfile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.PhaseProfile, errors.KindInvalidData, err, "decode profile")
	}
	if f.Version != 0 && f.Version != 1 {
		return nil, errors.InvalidInput(errors.PhaseProfile, "unsupported profile version")
	}

	p := &Profile{contexts: make(map[string]map[uint8]Entry, len(f.Contexts))}
	for _, c := range f.Contexts {
		if c.Name == "" {
			return nil, errors.InvalidInput(errors.PhaseProfile, "context with empty name")
		}
		if _, ok := p.contexts[c.Name]; ok {
			return nil, errors.New(errors.PhaseProfile, errors.KindInvalidData).
				Detail("duplicate context %q", c.Name).Build()
		}
		tags := make(map[uint8]Entry, len(c.Tags))
		for _, ft := range c.Tags {
			if ft.Tag < 0 || ft.Tag > 255 {
				return nil, errors.New(errors.PhaseProfile, errors.KindInvalidData).
					Path(c.Name).Detail("tag %d out of range", ft.Tag).Build()
			}
			typ := Type(ft.Type)
			if ft.Type == "" {
				typ = TypeBytes
			}
			if !validType(typ) {
				return nil, errors.New(errors.PhaseProfile, errors.KindInvalidData).
					Path(c.Name).Detail("unknown type %q for tag %d", ft.Type, ft.Tag).Build()
			}
			tag := uint8(ft.Tag)
			if _, ok := tags[tag]; ok {
				return nil, errors.New(errors.PhaseProfile, errors.KindInvalidData).
					Path(c.Name).Detail("duplicate tag %d", ft.Tag).Build()
			}
			tags[tag] = Entry{Tag: tag, Name: ft.Name, Type: typ, Context: ft.Context}
		}
		p.contexts[c.Name] = tags
	}

	// Container entries must reference a declared context.
	for name, tags := range p.contexts {
		for _, e := range tags {
			if e.Type != TypeContainer {
				continue
			}
			if e.Context == "" {
				return nil, errors.New(errors.PhaseProfile, errors.KindInvalidData).
					Path(name).Detail("container tag %d has no context", e.Tag).Build()
			}
			if _, ok := p.contexts[e.Context]; !ok {
				return nil, errors.NotFound(errors.PhaseProfile, "context", e.Context)
			}
		}
	}
	return p, nil
}

// Lookup returns the entry for tag within the named context.
func (p *Profile) Lookup(ctx string, tag uint8) (Entry, bool) {
	if p == nil {
		return Entry{}, false
	}
	e, ok := p.contexts[ctx][tag]
	return e, ok
}

// HasContext reports whether the profile declares the named context.
func (p *Profile) HasContext(ctx string) bool {
	if p == nil {
		return false
	}
	_, ok := p.contexts[ctx]
	return ok
}
