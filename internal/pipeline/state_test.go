package pipeline

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{Start, PathsResolved, true},
		{Start, EnvironmentReady, false},
		{PathsResolved, EnvironmentReady, true},
		{EnvironmentReady, Cleaned, true},
		{EnvironmentReady, Bundled, true},
		{EnvironmentReady, Reported, false},
		{Cleaned, Bundled, true},
		{Cleaned, EnvironmentReady, false},
		{Bundled, Reported, true},
		{Start, Failed, true},
		{Bundled, Failed, true},
		{Reported, Failed, false},
		{Failed, Start, false},
		{Failed, Failed, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	if got := EnvironmentReady.String(); got != "environment-ready" {
		t.Fatalf("String() = %q, want %q", got, "environment-ready")
	}
	if got := State(42).String(); got != "state(42)" {
		t.Fatalf("String() = %q, want %q", got, "state(42)")
	}
}
