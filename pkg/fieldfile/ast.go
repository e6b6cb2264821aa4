package fieldfile

import (
	"fmt"

	"github.com/pesislab/kentta/pkg/field"
)

// File represents a parsed .field file. A file holds one or more
// profile declarations.
type File struct {
	Profiles []*ProfileDecl `parser:"@@+"`
}

// ProfileDecl is one profile block.
// Example: profile "juniors" { home_plate { radius: 1.2 } ... }
type ProfileDecl struct {
	Name   string   `parser:"KwProfile @String LBrace"`
	Blocks []*Block `parser:"@@* RBrace"`
}

// Block is a named group of settings inside a profile.
type Block struct {
	Name    string   `parser:"@Ident LBrace"`
	Entries []*Entry `parser:"@@* RBrace"`
}

// Entry is a single key/value setting.
type Entry struct {
	Key   string  `parser:"@Ident Colon"`
	Value float64 `parser:"@Number"`
}

// GetBlock returns the named block if present.
func (d *ProfileDecl) GetBlock(name string) *Block {
	for _, b := range d.Blocks {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// ToProfiles maps every declaration onto validated field profiles.
func (f *File) ToProfiles() ([]*field.Profile, error) {
	profiles := make([]*field.Profile, 0, len(f.Profiles))
	for _, d := range f.Profiles {
		p, err := d.ToProfile()
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// ToProfile maps the declaration onto a field.Profile and validates it.
// Unknown blocks and keys are errors so a typo cannot silently leave a
// dimension at zero.
func (d *ProfileDecl) ToProfile() (*field.Profile, error) {
	p := &field.Profile{Name: unquote(d.Name)}
	for _, b := range d.Blocks {
		if err := applyBlock(p, b); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return p, nil
}

func applyBlock(p *field.Profile, b *Block) error {
	fields, ok := blockFields(p, b.Name)
	if !ok {
		return fmt.Errorf("unknown block %q", b.Name)
	}
	for _, e := range b.Entries {
		dst, ok := fields[e.Key]
		if !ok {
			return fmt.Errorf("block %q: unknown key %q", b.Name, e.Key)
		}
		*dst = e.Value
	}
	return nil
}

// blockFields maps a block's keys onto the profile fields they set.
func blockFields(p *field.Profile, block string) (map[string]*float64, bool) {
	switch block {
	case "home_plate":
		return map[string]*float64{
			"radius":              &p.HomePlate.Radius,
			"center_to_home_line": &p.HomePlate.CenterToHomeLine,
			"line_half_width":     &p.HomePlate.LineHalfWidth,
		}, true
	case "batting_sector":
		return map[string]*float64{
			"origin_offset_y": &p.BattingSector.OriginOffsetY,
			"left_angle":      &p.BattingSector.LeftAngleDeg,
			"right_angle":     &p.BattingSector.RightAngleDeg,
		}, true
	case "diagonal_lines":
		return map[string]*float64{
			"length_from_home_line": &p.DiagonalLines.LengthFromHomeLine,
		}, true
	case "back_boundary":
		return map[string]*float64{
			"distance_from_home_line": &p.BackBoundary.DistanceFromHomeLine,
			"width":                   &p.BackBoundary.Width,
		}, true
	case "front_arc":
		return map[string]*float64{
			"inner_radius": &p.FrontArc.InnerRadius,
			"outer_radius": &p.FrontArc.OuterRadius,
		}, true
	case "home_arcs":
		return map[string]*float64{
			"inner_radius": &p.HomeArcs.InnerRadius,
			"outer_radius": &p.HomeArcs.OuterRadius,
		}, true
	case "bases":
		return map[string]*float64{
			"first_offset":  &p.FirstBaseOffset,
			"second_offset": &p.SecondBaseOffset,
			"third_offset":  &p.ThirdBaseOffset,
			"radius":        &p.BaseRadius,
			"line_length":   &p.BaseLineLength,
		}, true
	case "home_path":
		return map[string]*float64{
			"first_line": &p.HomePathFirstLine,
			"end_offset": &p.HomePathEndOffset,
		}, true
	}
	return nil, false
}

// unquote strips the surrounding quotes from a String token.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
