// Package validate runs structural and cross-reference checks over loaded
// campaign content. Checks never short-circuit: callers always receive the
// complete list of findings, and a campaign is valid iff no finding carries
// Error severity.
package validate

import "fmt"

// Severity orders findings. Errors make a campaign invalid; Warnings and
// Infos are advisory.
type Severity uint8

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", uint8(s))
}

// Finding is a single validation result.
type Finding struct {
	Severity Severity `json:"severity"`
	Kind     string   `json:"kind"`
	Message  string   `json:"message"`
	Location string   `json:"location,omitempty"`
}

func (f Finding) String() string {
	if f.Location == "" {
		return fmt.Sprintf("%s [%s] %s", f.Severity, f.Kind, f.Message)
	}
	return fmt.Sprintf("%s [%s] %s: %s", f.Severity, f.Kind, f.Location, f.Message)
}

// Report is the complete outcome of a validation run.
type Report []Finding

// Valid reports whether the campaign has no Error-severity findings.
func (r Report) Valid() bool {
	for _, f := range r {
		if f.Severity == Error {
			return false
		}
	}
	return true
}

// Errors returns only the Error-severity findings.
func (r Report) Errors() []Finding {
	return r.filter(Error)
}

// Warnings returns only the Warning-severity findings.
func (r Report) Warnings() []Finding {
	return r.filter(Warning)
}

func (r Report) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range r {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

func errorf(kind, location, format string, args ...any) Finding {
	return Finding{Severity: Error, Kind: kind, Location: location, Message: fmt.Sprintf(format, args...)}
}

func warningf(kind, location, format string, args ...any) Finding {
	return Finding{Severity: Warning, Kind: kind, Location: location, Message: fmt.Sprintf(format, args...)}
}
