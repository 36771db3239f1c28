// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import "fmt"

// ConfigurationError reports an invalid processing parameter. It is
// raised before any document mutation and is fatal for the request.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%q: %s", e.Field, e.Value, e.Reason)
}

// StructureError reports a document whose endnote anchors cannot be
// resolved. It is raised before any mutation and identifies the
// offending anchor.
type StructureError struct {
	NoteIndex int
	AnchorID  string
	Reason    string
}

func (e *StructureError) Error() string {
	if e.NoteIndex > 0 {
		return fmt.Sprintf("document structure: note %d (anchor %q): %s", e.NoteIndex, e.AnchorID, e.Reason)
	}
	return fmt.Sprintf("document structure: %s", e.Reason)
}
