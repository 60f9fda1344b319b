// Package component decides what a scaffolded component consists of. Plan
// computes the ordered file set for a Spec; Renderer produces each file's
// content from the embedded template variants.
package component
