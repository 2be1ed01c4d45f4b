// Package glk models the JSON windowing protocol spoken by RemGlk-style interpreters.
//
// An interpreter is booted with an InitEvent, pushes Update values describing window
// content and input requests, and is driven by InputEvent values echoing the latest
// generation number it reported.
package glk
