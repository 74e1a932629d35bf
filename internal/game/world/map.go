package world

import (
	"errors"
	"fmt"
)

var (
	// ErrLocationNotFound is returned when coordinates name no location.
	ErrLocationNotFound = errors.New("location not found")
	// ErrDuplicateCoords is returned when two locations share coordinates.
	ErrDuplicateCoords = errors.New("duplicate coordinates")
)

// Map indexes the locations of one game world by their coordinates.
// A Map is owned by a single game loop and is not safe for concurrent use.
type Map struct {
	// Name identifies the map in logs.
	Name      string
	start     Coords
	locations map[Coords]*Location
	order     []Coords
}

// NewMap builds a map from locs with the player starting at start.
//
// Precondition: locs must not share coordinates and one of them must be at start.
// Postcondition: Returns a Map indexing every location, or an error wrapping
// ErrDuplicateCoords or ErrLocationNotFound.
func NewMap(start Coords, locs ...*Location) (*Map, error) {
	m := &Map{
		start:     start,
		locations: make(map[Coords]*Location, len(locs)),
		order:     make([]Coords, 0, len(locs)),
	}
	for _, loc := range locs {
		if _, exists := m.locations[loc.Coords]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCoords, loc.Coords)
		}
		m.locations[loc.Coords] = loc
		m.order = append(m.order, loc.Coords)
	}
	if _, ok := m.locations[start]; !ok {
		return nil, fmt.Errorf("start %s: %w", start, ErrLocationNotFound)
	}
	return m, nil
}

// At returns the location at c.
//
// Postcondition: Returns (loc, true) if found, or (nil, false) otherwise.
func (m *Map) At(c Coords) (*Location, bool) {
	loc, ok := m.locations[c]
	return loc, ok
}

// Start returns the coordinates where a new player begins.
func (m *Map) Start() Coords {
	return m.start
}

// Locations returns every location in the order it was added.
func (m *Map) Locations() []*Location {
	locs := make([]*Location, 0, len(m.order))
	for _, c := range m.order {
		locs = append(locs, m.locations[c])
	}
	return locs
}

// Len returns the number of locations.
func (m *Map) Len() int {
	return len(m.locations)
}
