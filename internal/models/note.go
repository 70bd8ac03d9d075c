package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/infrakeeper/internal/common"
)

// Severity classifies the urgency of a note.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityNotice   Severity = "notice"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Severities in escalating order.
var Severities = []Severity{SeverityInfo, SeverityNotice, SeverityWarning, SeverityCritical}

// Rank orders severities: info < notice < warning < critical. Unknown
// values rank 0.
func (s Severity) Rank() int {
	for i, v := range Severities {
		if v == s {
			return i + 1
		}
	}
	return 0
}

func (s Severity) Valid() bool { return s.Rank() > 0 }

// ParseSeverity is case-insensitive.
func ParseSeverity(s string) (Severity, error) {
	v := Severity(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: unknown severity %q", common.ErrorValidation, s)
	}
	return v, nil
}

// Note is a timestamped operational annotation on an inventory entity.
type Note struct {
	ID          int64       `json:"id"`
	Association Association `json:"association"`
	Severity    Severity    `json:"severity"`
	Note        string      `json:"note"`
	CreatedBy   int64       `json:"created_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NoteFields are the caller-editable parts of a Note.
type NoteFields struct {
	Severity Severity `json:"severity"`
	Note     string   `json:"note"`
}

// Validate requires non-blank text and a known severity.
func (f NoteFields) Validate() error {
	if strings.TrimSpace(f.Note) == "" {
		return fmt.Errorf("%w: note text is required", common.ErrorValidation)
	}
	if !f.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", common.ErrorValidation, f.Severity)
	}
	return nil
}

func (n *Note) Clone() *Note {
	cp := *n
	return &cp
}
