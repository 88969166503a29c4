// Package verbs implements the built-in ActionHandlers: Take, Drop,
// Open/Close, Lock/Unlock, Wear/Remove, TurnOn/TurnOff, PutIn/PutOn,
// Go, Examine, Inventory, Look, Score, Wait, Touch, Kick, Give, and
// Diagnose (spec section 4.6). Each handler follows the same
// Validate/Process split: Validate rejects without touching state,
// Process reads state and returns the changes to apply.
package verbs
