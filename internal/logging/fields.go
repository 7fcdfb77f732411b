// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldBytes  = "bytes"
	FieldFlavor = "flavor"

	// Document fields.
	FieldMode     = "mode"
	FieldPrevMode = "prev_mode"
	FieldCount    = "count"
	FieldLength   = "length"

	// Inspection fields.
	FieldBlocks   = "blocks"
	FieldHeadings = "headings"
	FieldTables   = "tables"
	FieldChanged  = "changed"
)
