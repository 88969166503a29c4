// Package action defines the ActionHandler protocol and the two
// values a handler communicates through: ActionResult (what a
// successful process() produced) and ActionResponse (the closed
// taxonomy of expected failures a handler can raise instead), per
// spec sections 4.1, 4.4, and 7.
package action
