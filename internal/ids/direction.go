package ids

// Direction_e lives in ids (rather than vocab, where a reader would
// expect it) because values.AttributeKey needs to address a specific
// exit direction and values cannot import vocab without a cycle;
// vocab re-exports everything here under its own name.

import (
	"encoding/json"
	"fmt"
)

// Direction_e is an enum for the directions a player can move or a
// location can have an exit toward.
type Direction_e int

const (
	Unknown Direction_e = iota
	North
	South
	East
	West
	Northeast
	Northwest
	Southeast
	Southwest
	Up
	Down
	In
	Out
)

// NumDirections is the number of real (non-Unknown) directions.
const NumDirections = int(Out)

// Directions is a helper for iterating over every real direction.
var Directions = []Direction_e{
	North, South, East, West,
	Northeast, Northwest, Southeast, Southwest,
	Up, Down, In, Out,
}

var (
	EnumToString = map[Direction_e]string{
		Unknown:   "?",
		North:     "north",
		South:     "south",
		East:      "east",
		West:      "west",
		Northeast: "northeast",
		Northwest: "northwest",
		Southeast: "southeast",
		Southwest: "southwest",
		Up:        "up",
		Down:      "down",
		In:        "in",
		Out:       "out",
	}
	StringToEnum = map[string]Direction_e{
		"?":         Unknown,
		"north":     North,
		"n":         North,
		"south":     South,
		"s":         South,
		"east":      East,
		"e":         East,
		"west":      West,
		"w":         West,
		"northeast": Northeast,
		"ne":        Northeast,
		"northwest": Northwest,
		"nw":        Northwest,
		"southeast": Southeast,
		"se":        Southeast,
		"southwest": Southwest,
		"sw":        Southwest,
		"up":        Up,
		"u":         Up,
		"down":      Down,
		"d":         Down,
		"in":        In,
		"out":       Out,
	}
)

// MarshalJSON implements the json.Marshaler interface.
func (d Direction_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[d])
}

// MarshalText implements the encoding.TextMarshaler interface, needed
// so Direction_e can be used as a map key in JSON (e.g. a location's
// exits map).
func (d Direction_e) MarshalText() ([]byte, error) {
	return []byte(EnumToString[d]), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Direction_e) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	dir, ok := StringToEnum[s]
	if !ok {
		return fmt.Errorf("invalid Direction %q", s)
	}
	*d = dir
	return nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Direction_e) UnmarshalText(text []byte) error {
	quoted := append([]byte{'"'}, text...)
	quoted = append(quoted, '"')
	return d.UnmarshalJSON(quoted)
}

// String implements the fmt.Stringer interface.
func (d Direction_e) String() string {
	if s, ok := EnumToString[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
