// Package clog is the diagnostic logging engine of zrpcd.
//
// It owns four things:
//   - the severity table (Emergency..Debug) used to filter messages,
//   - the debug category bitmask toggled from the vty,
//   - the sink router that fans one line out to stderr, syslog and a file,
//   - the reconfiguration entry points that swap the file target and
//     threshold while the daemon keeps running.
//
// Output line format (console and file):
//
//	2024/01/15 14:32:05 Debug ZRPC: message
//
// Lines are CRLF-terminated. The file sink is reopened by path for every
// message so that external log rotation needs no signal.
package clog

import "fmt"

// Severity is a syslog-compatible message severity. Lower values are more
// severe; a message is emitted when its severity is numerically less than
// or equal to the configured threshold.
type Severity int

const (
	SeverityEmergency Severity = iota
	SeverityAlert
	SeverityCritical
	SeverityError
	SeverityWarning
	SeverityNotice
	SeverityInformational
	// SeverityDebug is the most verbose level and the fallback for
	// unrecognized severity text.
	SeverityDebug
)

// severityNames is ordered by Severity value. ParseSeverity walks it in
// this order.
var severityNames = [...]string{
	"Emergency",
	"Alert",
	"Critical",
	"Error",
	"Warning",
	"Notice",
	"Informational",
	"Debug",
}

// severityMatchLen is the number of leading characters compared by
// ParseSeverity.
const severityMatchLen = 3

// String returns the display name of the severity.
func (s Severity) String() string {
	if s < SeverityEmergency || s > SeverityDebug {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// Enabled reports whether a message of severity msg passes a threshold of s.
func (s Severity) Enabled(msg Severity) bool {
	return msg <= s
}

// Severities returns every known severity, most severe first.
func Severities() []Severity {
	out := make([]Severity, 0, len(severityNames))
	for i := range severityNames {
		out = append(out, Severity(i))
	}
	return out
}

// LookupSeverity matches the first three characters of text, case
// sensitively, against each display name in table order. The second
// result is false when nothing matches.
func LookupSeverity(text string) (Severity, bool) {
	if len(text) < severityMatchLen {
		return SeverityDebug, false
	}
	prefix := text[:severityMatchLen]
	for i, name := range severityNames {
		if name[:severityMatchLen] == prefix {
			return Severity(i), true
		}
	}
	return SeverityDebug, false
}

// ParseSeverity is LookupSeverity without the match signal: unrecognized
// text selects SeverityDebug. "xyz", "" and "info" (lower case) all yield
// SeverityDebug.
func ParseSeverity(text string) Severity {
	sev, _ := LookupSeverity(text)
	return sev
}

// Facility is a syslog facility code, already shifted into the priority
// bits (LOG_DAEMON is 3<<3).
type Facility int

// Syslog facilities.
const (
	FacilityKern Facility = iota << 3
	FacilityUser
	FacilityMail
	FacilityDaemon
	FacilityAuth
	FacilitySyslog
	FacilityLPR
	FacilityNews
	FacilityUUCP
	FacilityCron
	FacilityAuthPriv
	FacilityFTP
	_
	_
	_
	_
	FacilityLocal0
	FacilityLocal1
	FacilityLocal2
	FacilityLocal3
	FacilityLocal4
	FacilityLocal5
	FacilityLocal6
	FacilityLocal7
)

var facilityNames = map[string]Facility{
	"kern":     FacilityKern,
	"user":     FacilityUser,
	"mail":     FacilityMail,
	"daemon":   FacilityDaemon,
	"auth":     FacilityAuth,
	"syslog":   FacilitySyslog,
	"lpr":      FacilityLPR,
	"news":     FacilityNews,
	"uucp":     FacilityUUCP,
	"cron":     FacilityCron,
	"authpriv": FacilityAuthPriv,
	"ftp":      FacilityFTP,
	"local0":   FacilityLocal0,
	"local1":   FacilityLocal1,
	"local2":   FacilityLocal2,
	"local3":   FacilityLocal3,
	"local4":   FacilityLocal4,
	"local5":   FacilityLocal5,
	"local6":   FacilityLocal6,
	"local7":   FacilityLocal7,
}

// ParseFacility returns the facility for a lower-case syslog facility name.
func ParseFacility(name string) (Facility, error) {
	f, ok := facilityNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown syslog facility %q", name)
	}
	return f, nil
}

// String returns the syslog name of the facility.
func (f Facility) String() string {
	for name, v := range facilityNames {
		if v == f {
			return name
		}
	}
	return fmt.Sprintf("Facility(%d)", int(f))
}
