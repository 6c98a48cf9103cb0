package clog

import "testing"

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityEmergency, "Emergency"},
		{SeverityAlert, "Alert"},
		{SeverityCritical, "Critical"},
		{SeverityError, "Error"},
		{SeverityWarning, "Warning"},
		{SeverityNotice, "Notice"},
		{SeverityInformational, "Informational"},
		{SeverityDebug, "Debug"},
		{Severity(99), "Severity(99)"},
		{Severity(-1), "Severity(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.sev.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
		ok    bool
	}{
		{"Emergency", SeverityEmergency, true},
		{"Eme", SeverityEmergency, true},
		{"Alert", SeverityAlert, true},
		{"Critical", SeverityCritical, true},
		{"Error", SeverityError, true},
		{"Errors", SeverityError, true},
		{"Warning", SeverityWarning, true},
		{"Warnings", SeverityWarning, true},
		{"Notice", SeverityNotice, true},
		{"Notifications", SeverityNotice, true},
		{"Informational", SeverityInformational, true},
		{"Inf", SeverityInformational, true},
		{"Debug", SeverityDebug, true},
		{"Deb", SeverityDebug, true},
		{"deb", SeverityDebug, false},  // case sensitive, falls back
		{"info", SeverityDebug, false}, // case sensitive, falls back
		{"xyz", SeverityDebug, false},
		{"In", SeverityDebug, false}, // shorter than the match length
		{"", SeverityDebug, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseSeverity(tt.input); got != tt.want {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
			}
			got, ok := LookupSeverity(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("LookupSeverity(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseSeverity_RoundTripsNames(t *testing.T) {
	for _, sev := range Severities() {
		if got := ParseSeverity(sev.String()); got != sev {
			t.Errorf("ParseSeverity(%q) = %v, want %v", sev.String(), got, sev)
		}
	}
}

func TestSeverity_Enabled(t *testing.T) {
	tests := []struct {
		name      string
		threshold Severity
		msg       Severity
		want      bool
	}{
		{"debug threshold passes debug", SeverityDebug, SeverityDebug, true},
		{"debug threshold passes info", SeverityDebug, SeverityInformational, true},
		{"info threshold drops debug", SeverityInformational, SeverityDebug, false},
		{"info threshold passes info", SeverityInformational, SeverityInformational, true},
		{"warning threshold drops info", SeverityWarning, SeverityInformational, false},
		{"warning threshold passes error", SeverityWarning, SeverityError, true},
		{"emergency threshold passes emergency", SeverityEmergency, SeverityEmergency, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.threshold.Enabled(tt.msg); got != tt.want {
				t.Errorf("%v.Enabled(%v) = %v, want %v", tt.threshold, tt.msg, got, tt.want)
			}
		})
	}
}

func TestParseFacility(t *testing.T) {
	tests := []struct {
		name    string
		want    Facility
		wantErr bool
	}{
		{"kern", FacilityKern, false},
		{"user", 1 << 3, false},
		{"daemon", 3 << 3, false},
		{"authpriv", 10 << 3, false},
		{"local0", 16 << 3, false},
		{"local7", 23 << 3, false},
		{"DAEMON", 0, true},
		{"bogus", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFacility(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFacility(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFacility(%q) = %d, want %d", tt.name, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.name {
				t.Errorf("Facility.String() = %q, want %q", got.String(), tt.name)
			}
		})
	}
}
