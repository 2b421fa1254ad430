package domain

import (
	"reflect"
	"testing"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    MovePlan
		wantErr bool
	}{
		{
			name: "simple mapping",
			raw:  `{"a.ts": "sub/a.ts"}`,
			want: MovePlan{"a.ts": "sub/a.ts"},
		},
		{
			name: "paths are normalized",
			raw:  `{"./a.ts": "sub//a.ts", "dir/../b.ts": "./sub/b.ts"}`,
			want: MovePlan{"a.ts": "sub/a.ts", "b.ts": "sub/b.ts"},
		},
		{
			name: "empty mapping",
			raw:  `{}`,
			want: MovePlan{},
		},
		{
			name:    "malformed JSON",
			raw:     `{"a.ts": }`,
			wantErr: true,
		},
		{
			name:    "not an object",
			raw:     `["a.ts"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlan(tt.raw)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got plan %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMovePlan_DestinationOf(t *testing.T) {
	plan := MovePlan{"a.ts": "sub/a.ts"}

	if got := plan.DestinationOf("a.ts"); got != "sub/a.ts" {
		t.Errorf("expected sub/a.ts, got %s", got)
	}

	// Identity default: a path not present as a key stays in place.
	if got := plan.DestinationOf("b.ts"); got != "b.ts" {
		t.Errorf("expected b.ts, got %s", got)
	}
}

func TestMovePlan_Origins_Sorted(t *testing.T) {
	plan := MovePlan{
		"c.ts":     "sub/c.ts",
		"a.ts":     "sub/a.ts",
		"dir/b.ts": "b.ts",
	}

	want := []string{"a.ts", "c.ts", "dir/b.ts"}
	if got := plan.Origins(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
