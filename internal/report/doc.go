// Package report renders lvms command results as aligned text, JSON or YAML.
//
// Records are plain structs with json and yaml tags so that the machine
// formats and the text tables share one shape. Text output colours the
// bracketed modification tokens when the destination is a terminal.
package report
