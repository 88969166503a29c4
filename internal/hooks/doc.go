// Package hooks implements the LocationEventHandler and
// ItemEventHandler first-class-function customization points (spec
// section 4.7): per-object behavior is wholly configuration-time, with
// no inheritance hierarchy to extend.
package hooks
