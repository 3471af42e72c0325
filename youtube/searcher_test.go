package youtube

import (
	"errors"
	"testing"
)

func TestQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		wantErr error
	}{
		{name: "valid", query: Query{Text: "go concurrency", MaxResults: 10}},
		{name: "valid with audience", query: Query{Text: "go", Audience: AudienceBeginner}},
		{name: "empty text", query: Query{Text: ""}, wantErr: ErrEmptyQuery},
		{name: "blank text", query: Query{Text: " \t "}, wantErr: ErrEmptyQuery},
		{name: "unknown audience", query: Query{Text: "go", Audience: "guru"}, wantErr: ErrInvalidAudience},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestQueryProviderText(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{name: "no audience", query: Query{Text: "restaking on ethereum"}, want: "restaking on ethereum"},
		{name: "beginner", query: Query{Text: "restaking on ethereum", Audience: AudienceBeginner}, want: "restaking on ethereum for beginners"},
		{name: "intermediate", query: Query{Text: "go generics", Audience: AudienceIntermediate}, want: "go generics for intermediate viewers"},
		{name: "advanced", query: Query{Text: "go generics", Audience: AudienceAdvanced}, want: "go generics for advanced viewers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.providerText(); got != tt.want {
				t.Errorf("providerText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClampMaxResults(t *testing.T) {
	tests := []struct {
		in   int64
		want int64
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{25, 25},
		{50, 50},
		{51, 50},
		{1000, 50},
	}

	for _, tt := range tests {
		if got := clampMaxResults(tt.in); got != tt.want {
			t.Errorf("clampMaxResults(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseAudience(t *testing.T) {
	for _, valid := range []string{"", "beginner", "intermediate", "advanced"} {
		if _, err := ParseAudience(valid); err != nil {
			t.Errorf("ParseAudience(%q) = %v, want nil", valid, err)
		}
	}
	if _, err := ParseAudience("expert"); !errors.Is(err, ErrInvalidAudience) {
		t.Errorf("ParseAudience(expert) = %v, want ErrInvalidAudience", err)
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	err := &ProviderError{Op: "search", Err: ErrQuotaExceeded}
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("errors.Is should see through ProviderError")
	}
	if err.Error() == "" {
		t.Errorf("Error() should describe the failure")
	}
}
