// Package world provides the game world model: coordinates, locations,
// items, narrative events, and the map that ties them together.
package world

import (
	"fmt"

	"github.com/cory-johannsen/adventure/internal/game/lexical"
)

// Direction represents one of the four compass directions a player can move.
type Direction string

// Compass directions.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions contains the four compass directions in rendering order.
var Directions = []Direction{North, South, East, West}

// ParseDirection resolves a direction token typed by the player. Full names
// and single letter abbreviations are accepted in any ASCII case.
//
// Postcondition: Returns (dir, true) on success, or ("", false) for any other token.
func ParseDirection(token string) (Direction, bool) {
	switch lexical.Lower(token) {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	default:
		return "", false
	}
}

// Opposite returns the reverse of d.
// For an unknown direction, it returns an empty string.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return ""
	}
}

// Delta returns the unit grid offset for d. North increases y and east increases x.
//
// Postcondition: exactly one of dx, dy is non-zero for a compass direction; both are zero otherwise.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Coords identifies a location on the map grid.
type Coords struct {
	X int
	Y int
}

// Step returns the coordinates one unit away in direction d.
func (c Coords) Step(d Direction) Coords {
	dx, dy := d.Delta()
	return Coords{X: c.X + dx, Y: c.Y + dy}
}

// String renders c as "(x, y)".
func (c Coords) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// At returns a pointer to a fresh Coords value, for optional fields.
func At(x, y int) *Coords {
	return &Coords{X: x, Y: y}
}
