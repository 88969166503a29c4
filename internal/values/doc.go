// Package values implements StateValue, the tagged sum that every
// piece of world data reduces to, plus the two supporting tagged sums
// it is built from: EntityReference (a pointer to an item, location,
// the player, a global, or nowhere) and ParentEntity (where an item
// currently lives). AttributeKey, the tagged sum a StateChange
// addresses, also lives here since it is built entirely out of these
// same identifier and entity types.
package values
