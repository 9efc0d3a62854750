// Package trainmap models the train map description: a JSON array of cells.
//
// A Cell is an open record. Every member is kept verbatim and in input order,
// so cells that are not rewritten encode back to the same members in the same
// order. Typed accessors cover the members the tooling understands (type,
// text and eva); layout members such as x, y and classes pass through as raw
// JSON.
package trainmap
