package nems

import (
	"errors"
	"testing"
)

func TestNewEntry_Validation(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  int
		threads int
		wantErr bool
	}{
		{"valid", 0, 7, 1, false},
		{"single pet", 4, 4, 1, false},
		{"reversed bounds", 5, 2, 1, true},
		{"negative lower", -1, 4, 1, true},
		{"zero threads", 0, 7, 0, true},
		{"negative threads", 0, 7, -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntry("schism", RoleOCN, tt.lo, tt.hi, tt.threads)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("expected ErrInvalid, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e.Role != RoleOCN {
				t.Errorf("role = %s, want OCN", e.Role)
			}
		})
	}
}

func TestEntry_PetBounds(t *testing.T) {
	e, err := NewEntry("datm", RoleATM, 0, 7, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := e.PetBounds(); got != "0 7" {
		t.Errorf("PetBounds() = %q, want %q", got, "0 7")
	}
	if got := e.Processors(); got != 8 {
		t.Errorf("Processors() = %d, want 8", got)
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"ATM", RoleATM, false},
		{"ocn", RoleOCN, false},
		{" med ", RoleMED, false},
		{"Wav", RoleWAV, false},
		{"XYZ", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("ParseRole(%q): expected ErrInvalid, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
