package generator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/bddgen/internal/domain"
)

func TestParseScenariosValid(t *testing.T) {
	raw := `[
		{"title": "Scenario: Successful login", "steps": ["Given a registered user", "When they submit valid credentials", "Then they see the dashboard"]},
		{"title": "Scenario: Wrong password", "steps": ["Given a registered user", "When they submit a wrong password", "Then an error is shown"]}
	]`

	got, err := parseScenarios(raw)
	if err != nil {
		t.Fatalf("parseScenarios returned error: %v", err)
	}

	want := domain.GenerationResult{
		{
			Title: "Scenario: Successful login",
			Steps: []string{"Given a registered user", "When they submit valid credentials", "Then they see the dashboard"},
		},
		{
			Title: "Scenario: Wrong password",
			Steps: []string{"Given a registered user", "When they submit a wrong password", "Then an error is shown"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseScenarios mismatch (-want +got):\n%s", diff)
	}
}

func TestParseScenariosRejections(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name:    "not json",
			raw:     "Here are your scenarios:",
			wantErr: domain.ErrInvalidResponseFormat,
		},
		{
			name:    "wrong shape",
			raw:     `{"title": "Scenario: X", "steps": ["Given y"]}`,
			wantErr: domain.ErrInvalidResponseFormat,
		},
		{
			name:    "empty array",
			raw:     `[]`,
			wantErr: domain.ErrEmptyResponse,
		},
		{
			name:    "missing title",
			raw:     `[{"title": "  ", "steps": ["Given a thing"]}]`,
			wantErr: domain.ErrInvalidResponseFormat,
		},
		{
			name:    "missing steps",
			raw:     `[{"title": "Scenario: X", "steps": []}]`,
			wantErr: domain.ErrInvalidResponseFormat,
		},
		{
			name:    "blank step",
			raw:     `[{"title": "Scenario: X", "steps": ["Given a thing", ""]}]`,
			wantErr: domain.ErrInvalidResponseFormat,
		},
		{
			name:    "one bad record fails the batch",
			raw:     `[{"title": "Scenario: X", "steps": ["Given a thing"]}, {"title": "Scenario: Y", "steps": []}]`,
			wantErr: domain.ErrInvalidResponseFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScenarios(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseScenarios error = %v, want %v", err, tt.wantErr)
			}
			if got != nil {
				t.Errorf("parseScenarios returned a result alongside an error: %v", got)
			}
		})
	}
}
