package service

import "testing"

func TestParseShift(t *testing.T) {
	tests := []struct {
		in      string
		want    Shift
		wantErr bool
	}{
		{in: "manana", want: ShiftManana},
		{in: "mañana", want: ShiftManana},
		{in: "MAÑANA", want: ShiftManana},
		{in: "  Tarde ", want: ShiftTarde},
		{in: "vespertino", want: ShiftVespertino},
		{in: "sábado", want: ShiftSabado},
		{in: "sabado", want: ShiftSabado},
		{in: "m", want: ShiftManana},
		{in: "t", want: ShiftTarde},
		{in: "v", want: ShiftVespertino},
		{in: "s", want: ShiftSabado},
		{in: "noche", wantErr: true},
		{in: "", wantErr: true},
		{in: "lunes", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShift(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseShift(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseShift(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShift_Weekdays(t *testing.T) {
	if got := ShiftSabado.Weekdays(); len(got) != 1 || got[0] != 6 {
		t.Errorf("sabado weekdays = %v, want [6]", got)
	}
	if got := ShiftManana.Weekdays(); len(got) != 5 || got[0] != 1 || got[4] != 5 {
		t.Errorf("manana weekdays = %v, want [1 2 3 4 5]", got)
	}
}
