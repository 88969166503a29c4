package vocab

import "github.com/mdhenderson/gnusto/internal/ids"

// Direction_e is an enum for the directions a player can move or a
// location can have an exit toward. It is a re-export of ids.Direction_e
// (defined there so values.AttributeKey can address a specific exit
// direction without an import cycle); callers outside this package
// should use vocab.Direction_e and friends.
type Direction_e = ids.Direction_e

const (
	Unknown   = ids.Unknown
	North     = ids.North
	South     = ids.South
	East      = ids.East
	West      = ids.West
	Northeast = ids.Northeast
	Northwest = ids.Northwest
	Southeast = ids.Southeast
	Southwest = ids.Southwest
	Up        = ids.Up
	Down      = ids.Down
	In        = ids.In
	Out       = ids.Out

	NumDirections = ids.NumDirections
)

var (
	Directions   = ids.Directions
	EnumToString = ids.EnumToString
	StringToEnum = ids.StringToEnum
)
