// Package utils provides internal utility functions for the trainmap-eva tool.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Field mutators (exact-match rewrite pairs)
//   - Source location helpers
//   - Time formatting for reports
package utils
