package application

import (
	"errors"
	"testing"

	"tsreorg/internal/domain"
)

func TestValidatePlan(t *testing.T) {
	tests := []struct {
		name    string
		plan    domain.MovePlan
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid plan",
			plan: domain.MovePlan{"a.ts": "sub/a.ts", "b.ts": "sub/b.ts"},
		},
		{
			name: "empty plan",
			plan: domain.MovePlan{},
		},
		{
			name:    "identity mapping",
			plan:    domain.MovePlan{"a.ts": "a.ts"},
			wantErr: true,
			errMsg:  "origin and destination are the same",
		},
		{
			name:    "duplicate destination",
			plan:    domain.MovePlan{"a.ts": "sub/x.ts", "b.ts": "sub/x.ts"},
			wantErr: true,
			errMsg:  "destination already used",
		},
		{
			name:    "absolute origin",
			plan:    domain.MovePlan{"/etc/a.ts": "sub/a.ts"},
			wantErr: true,
			errMsg:  "must be relative",
		},
		{
			name:    "destination escapes the root",
			plan:    domain.MovePlan{"a.ts": "../a.ts"},
			wantErr: true,
			errMsg:  "escapes the source root",
		},
		{
			name:    "empty destination",
			plan:    domain.MovePlan{"a.ts": "."},
			wantErr: true,
			errMsg:  "path is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlan(tt.plan)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !errors.Is(err, ErrInvalidPlan) {
					t.Errorf("expected ErrInvalidPlan, got %v", err)
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && len(substr) > 0 && findSubstring(s, substr)))
}

func findSubstring(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
