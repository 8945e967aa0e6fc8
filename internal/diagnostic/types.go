package diagnostic

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Diagnostics holds all findings of a validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Mapping names the specification the finding belongs to (if any).
	Mapping string
	// Entry is the position of the entry within the specification, or -1.
	Entry int
	// Key is the model key of the entry (if any).
	Key string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Location identifies where a finding was made.
type Location struct {
	Mapping string
	Entry   int
	Key     string
}

// At returns a location for an entry.
func At(mapping string, entry int, key string) Location {
	return Location{Mapping: mapping, Entry: entry, Key: key}
}

// InMapping returns a location for a whole mapping.
func InMapping(mapping string) Location {
	return Location{Mapping: mapping, Entry: -1}
}

// Nowhere is the location of file-level findings.
var Nowhere = Location{Entry: -1}

func (d *Diagnostics) add(sev Severity, code, message string, loc Location) {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Mapping:  loc.Mapping,
		Entry:    loc.Entry,
		Key:      loc.Key,
	}

	switch sev {
	case Error:
		d.Errors = append(d.Errors, diag)
	case Warning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, loc Location) {
	d.add(Error, code, message, loc)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, loc Location) {
	d.add(Warning, code, message, loc)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, loc Location) {
	d.add(Info, code, message, loc)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Codes returns the codes of all diagnostics, in All order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, d.Len())
	for _, diag := range d.All() {
		codes = append(codes, diag.Code)
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Write prints one line per diagnostic to w.
func (d *Diagnostics) Write(w io.Writer) error {
	for _, diag := range d.All() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag); err != nil {
			return err
		}
	}

	return nil
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Mapping != "" {
		prefix = append(prefix, "["+d.Mapping+"]")
	}

	switch {
	case d.Entry >= 0 && d.Key != "":
		prefix = append(prefix, fmt.Sprintf("#%d %s", d.Entry, d.Key))
	case d.Entry >= 0:
		prefix = append(prefix, fmt.Sprintf("#%d", d.Entry))
	case d.Key != "":
		prefix = append(prefix, d.Key)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
