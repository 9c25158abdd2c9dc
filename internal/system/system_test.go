package system

import "testing"

func TestSuggestWorkers(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		jobs      int
		want      int
	}{
		{"explicit", 3, 10, 3},
		{"capped by jobs", 8, 2, 2},
		{"single job", 16, 1, 1},
		{"zero jobs", 4, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestWorkers(tt.requested, tt.jobs); got != tt.want {
				t.Errorf("Expected %d workers, got %d", tt.want, got)
			}
		})
	}
}

func TestSuggestWorkersAuto(t *testing.T) {
	got := SuggestWorkers(0, 1000)
	if got < 1 {
		t.Errorf("Auto sizing must return at least one worker, got %d", got)
	}
	t.Logf("Auto-sized pool: %d workers", got)
}
