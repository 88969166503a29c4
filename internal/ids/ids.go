package ids

// ItemID identifies an item in the world.
type ItemID string

func (id ItemID) String() string { return string(id) }

// Less orders identifiers lexicographically, used to keep
// serialization and ALL-expansion output deterministic.
func (id ItemID) Less(other ItemID) bool { return id < other }

// LocationID identifies a location.
type LocationID string

func (id LocationID) String() string   { return string(id) }
func (id LocationID) Less(o LocationID) bool { return id < o }

// GlobalID identifies a global state slot or a flag.
type GlobalID string

func (id GlobalID) String() string { return string(id) }

// VerbID identifies a verb family (TAKE, DROP, OPEN, ...).
type VerbID string

func (id VerbID) String() string { return string(id) }

// AttributeID identifies an attribute slot on an item or location.
type AttributeID string

func (id AttributeID) String() string { return string(id) }

// DaemonID identifies a running daemon.
type DaemonID string

func (id DaemonID) String() string { return string(id) }

// FuseID identifies a running fuse (countdown).
type FuseID string

func (id FuseID) String() string { return string(id) }

// NoItem and NoLocation are the zero values, useful as explicit
// "none" sentinels distinct from an unset field in call sites that
// need to say so.
const (
	NoItem     ItemID     = ""
	NoLocation LocationID = ""
)
