package world

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// yamlMapFile is the top-level YAML structure for map files.
type yamlMapFile struct {
	Map yamlMap `yaml:"map"`
}

// yamlMap is the YAML representation of a map.
type yamlMap struct {
	Name      string         `yaml:"name" validate:"required"`
	Start     []int          `yaml:"start" validate:"len=2"`
	Locations []yamlLocation `yaml:"locations" validate:"required,min=1,dive"`
}

// yamlLocation is the YAML representation of a location.
type yamlLocation struct {
	At             []int      `yaml:"at" validate:"len=2"`
	Description    string     `yaml:"description" validate:"required"`
	Accessible     *bool      `yaml:"accessible"`
	BlockedMessage string     `yaml:"blocked_message"`
	Items          []yamlItem `yaml:"items" validate:"dive"`
	Event          *yamlEvent `yaml:"event"`
}

// yamlItem is the YAML representation of an item. Uses of zero means unlimited.
type yamlItem struct {
	Name    string      `yaml:"name" validate:"required"`
	Uses    int         `yaml:"uses" validate:"gte=0"`
	LastUse string      `yaml:"last_use"`
	UseAt   [][]int     `yaml:"use_at" validate:"dive,len=2"`
	Effect  *yamlEffect `yaml:"effect"`
}

// yamlEffect is the YAML representation of an item's use effect.
type yamlEffect struct {
	Target         []int  `yaml:"target" validate:"omitempty,len=2"`
	NewDescription string `yaml:"new_description" validate:"required_with=Target"`
	Text           string `yaml:"text" validate:"required"`
	MakeAccessible []int  `yaml:"make_accessible" validate:"omitempty,len=2"`
}

// yamlEvent is the YAML representation of a location event.
type yamlEvent struct {
	Kind           string    `yaml:"kind" validate:"required,oneof=message seal reveal redescribe grant"`
	Once           bool      `yaml:"once"`
	Text           string    `yaml:"text" validate:"required"`
	Target         []int     `yaml:"target" validate:"omitempty,len=2"`
	BlockedMessage string    `yaml:"blocked_message"`
	Description    string    `yaml:"description"`
	Grant          *yamlItem `yaml:"grant"`
}

// LoadMapFromFile reads and validates a single map YAML file.
//
// Precondition: path must point to a valid YAML map file.
// Postcondition: Returns a validated Map or a non-nil error.
func LoadMapFromFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file %s: %w", path, err)
	}
	return LoadMapFromBytes(data)
}

// LoadMapFromBytes parses and validates a map from YAML bytes. Every call
// returns a fresh Map, so callers may load the same bytes once per game.
//
// Precondition: data must be valid YAML conforming to the map schema.
// Postcondition: Returns a validated Map or a non-nil error. Coordinates that
// name no location wrap ErrLocationNotFound; repeated coordinates wrap
// ErrDuplicateCoords.
func LoadMapFromBytes(data []byte) (*Map, error) {
	var file yamlMapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing map YAML: %w", err)
	}
	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("validating map: %w", err)
	}

	m, err := convertYAMLMap(file.Map)
	if err != nil {
		return nil, fmt.Errorf("validating map %q: %w", file.Map.Name, err)
	}
	return m, nil
}

// convertYAMLMap converts the parsed YAML structures into domain types and
// checks that every referenced coordinate names a location.
func convertYAMLMap(ym yamlMap) (*Map, error) {
	locs := make([]*Location, 0, len(ym.Locations))
	for _, yl := range ym.Locations {
		loc := NewLocation(coordsOf(yl.At), strings.TrimSpace(yl.Description))
		if yl.Accessible != nil {
			loc.Accessible = *yl.Accessible
		}
		loc.BlockedMessage = yl.BlockedMessage
		for _, yi := range yl.Items {
			loc.PutItem(convertYAMLItem(yi))
		}
		if yl.Event != nil {
			ev, err := convertYAMLEvent(*yl.Event)
			if err != nil {
				return nil, fmt.Errorf("location %s: %w", loc.Coords, err)
			}
			loc.Event = ev
			loc.EventOnce = yl.Event.Once
		}
		locs = append(locs, loc)
	}

	m, err := NewMap(coordsOf(ym.Start), locs...)
	if err != nil {
		return nil, err
	}
	m.Name = ym.Name

	for _, loc := range m.Locations() {
		if err := checkReferences(m, loc); err != nil {
			return nil, fmt.Errorf("location %s: %w", loc.Coords, err)
		}
	}
	return m, nil
}

func convertYAMLItem(yi yamlItem) *Item {
	it := NewItem(yi.Name)
	if yi.Uses > 0 {
		it.UsesLeft = yi.Uses
	}
	it.LastUse = yi.LastUse
	for _, at := range yi.UseAt {
		it.UsableAt(coordsOf(at))
	}
	if yi.Effect != nil {
		it.Action = UseEffect{
			Target:         optionalCoords(yi.Effect.Target),
			NewDescription: yi.Effect.NewDescription,
			Text:           yi.Effect.Text,
			MakeAccessible: optionalCoords(yi.Effect.MakeAccessible),
		}
	}
	return it
}

func convertYAMLEvent(ye yamlEvent) (ScriptedEvent, error) {
	ev := ScriptedEvent{
		Kind:           EventKind(ye.Kind),
		Text:           ye.Text,
		BlockedMessage: ye.BlockedMessage,
		Description:    ye.Description,
	}
	switch ev.Kind {
	case EventSeal, EventReveal, EventRedescribe:
		if len(ye.Target) != 2 {
			return ScriptedEvent{}, fmt.Errorf("%s event requires a target", ev.Kind)
		}
		ev.Target = coordsOf(ye.Target)
	case EventGrant:
		if ye.Grant == nil {
			return ScriptedEvent{}, fmt.Errorf("grant event requires an item")
		}
		ev.Grant = convertYAMLItem(*ye.Grant)
	}
	if ev.Kind == EventRedescribe && strings.TrimSpace(ev.Description) == "" {
		return ScriptedEvent{}, fmt.Errorf("redescribe event requires a description")
	}
	return ev, nil
}

// checkReferences verifies that the coordinates used by loc's items and
// event all name locations on m.
func checkReferences(m *Map, loc *Location) error {
	var refs []Coords
	items := append(ItemList(nil), loc.Items...)
	if ev, ok := loc.Event.(ScriptedEvent); ok {
		switch ev.Kind {
		case EventSeal, EventReveal, EventRedescribe:
			refs = append(refs, ev.Target)
		case EventGrant:
			items = append(items, ev.Grant)
		}
	}
	for _, it := range items {
		it.UseLocations.Each(func(at Coords) {
			refs = append(refs, at)
		})
		if eff, ok := it.Action.(UseEffect); ok {
			if eff.Target != nil {
				refs = append(refs, *eff.Target)
			}
			if eff.MakeAccessible != nil {
				refs = append(refs, *eff.MakeAccessible)
			}
		}
	}
	for _, c := range refs {
		if _, ok := m.At(c); !ok {
			return fmt.Errorf("reference to %s: %w", c, ErrLocationNotFound)
		}
	}
	return nil
}

func coordsOf(pair []int) Coords {
	return Coords{X: pair[0], Y: pair[1]}
}

func optionalCoords(pair []int) *Coords {
	if len(pair) != 2 {
		return nil
	}
	c := coordsOf(pair)
	return &c
}
