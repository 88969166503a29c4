// Package ids defines the opaque, string-backed identifier types
// shared by every layer of the engine: ItemID, LocationID, GlobalID,
// VerbID, DaemonID, FuseID, and AttributeID. Each is hashable,
// ordered, and serializable, and safe to use as a map key.
package ids
