package nems

import (
	"reflect"
	"testing"
)

func TestAttributes_InsertionOrder(t *testing.T) {
	a := NewAttributes()
	a.Set("Verbosity", Int(0))
	a.Set("DumpFields", String("false"))
	a.Set("meshloc", String("element"))

	want := []string{"Verbosity", "DumpFields", "meshloc"}
	if got := a.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestAttributes_UpdateKeepsPosition(t *testing.T) {
	a := NewAttributes()
	a.Set("history_n", Int(1))
	a.Set("coupling_mode", String("coastal"))
	a.Set("history_n", Int(6))

	want := []string{"history_n", "coupling_mode"}
	if got := a.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	v, _ := a.Get("history_n")
	if v.String() != "6" {
		t.Errorf("history_n = %s, want 6", v)
	}
}

func TestAttributes_Merge(t *testing.T) {
	base := NewAttributes()
	base.Set("restart_n", Int(12))
	base.Set("stop_n", Int(120))

	over := NewAttributes()
	over.Set("stop_n", Int(56))
	over.Set("case_name", String("coastal"))

	merged := base.Merge(over)

	want := []string{"restart_n", "stop_n", "case_name"}
	if got := merged.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := merged.Get("stop_n"); v.String() != "56" {
		t.Errorf("stop_n = %s, want 56", v)
	}
	// merge must not mutate the receiver
	if v, _ := base.Get("stop_n"); v.String() != "120" {
		t.Errorf("base stop_n = %s, want 120", v)
	}
}

func TestValue_Rendering(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{String("PNETCDF"), "PNETCDF"},
		{Int(-999), "-999"},
		{Float(0.5), "0.5"},
		{Bool(true), "true"},
		{Bool(false), "false"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		raw  any
		kind Kind
		want string
	}{
		{"element", KindString, "element"},
		{8, KindInt, "8"},
		{int64(-999), KindInt, "-999"},
		{1.5, KindFloat, "1.5"},
		{true, KindBool, "true"},
	}

	for _, tt := range tests {
		v := FromAny(tt.raw)
		if v.Kind() != tt.kind {
			t.Errorf("FromAny(%v).Kind() = %v, want %v", tt.raw, v.Kind(), tt.kind)
		}
		if v.String() != tt.want {
			t.Errorf("FromAny(%v) = %q, want %q", tt.raw, v.String(), tt.want)
		}
	}
}
