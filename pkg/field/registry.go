package field

import (
	"fmt"
	"sort"
)

// Registry of known field profiles. The two built-ins register at init;
// custom profiles loaded from .field files join them at load time.
var registry = make(map[string]*Profile)

// Register adds a profile to the registry. Invalid profiles and
// duplicate names are rejected.
func Register(p *Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	if _, exists := registry[p.Name]; exists {
		return fmt.Errorf("profile %q already registered", p.Name)
	}
	registry[p.Name] = p
	return nil
}

// Get returns a profile by name.
func Get(name string) (*Profile, error) {
	if p, ok := registry[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown profile %q", name)
}

// List returns all registered profile names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	// Built-in field variants.
	if err := Register(MenProfile()); err != nil {
		panic(err)
	}
	if err := Register(WomenProfile()); err != nil {
		panic(err)
	}
}
