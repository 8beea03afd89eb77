package model

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    ClockMinute
		wantErr bool
	}{
		{in: "07:45", want: 7*60 + 45},
		{in: "00:00", want: 0},
		{in: "23:10", want: 23*60 + 10},
		{in: " 08:25 ", want: 8*60 + 25},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "0745", wantErr: true},
		{in: "", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestClockMinute_String(t *testing.T) {
	if got := ClockMinute(7*60 + 45).String(); got != "07:45" {
		t.Errorf("String() = %q, want %q", got, "07:45")
	}
	if got := ClockMinute(0).String(); got != "00:00" {
		t.Errorf("String() = %q, want %q", got, "00:00")
	}
}

func TestClockMinute_JSONRoundTrip(t *testing.T) {
	m := MustClock("09:05")
	b, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `"09:05"` {
		t.Fatalf("MarshalJSON = %s, want %q", b, `"09:05"`)
	}
	var back ClockMinute
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back != m {
		t.Errorf("round trip = %d, want %d", back, m)
	}
}
