// Package formatter provides serialization for enriched train maps.
//
// This package is organized into:
// - json.go: indented JSON encoding of the map document and file output
// - report.go: YAML report of destinations left on the sentinel
//
// JSON output is always indented (two spaces unless configured), does not escape HTML
// characters and has no trailing newline.
package formatter
