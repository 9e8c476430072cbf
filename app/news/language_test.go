package news

import "testing"

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		name       string
		preference string
		want       string
	}{
		{"hindi preference", "Hindi", "hi"},
		{"english preference", "English", "en"},
		{"unknown preference falls back to english", "Klingon", "en"},
		{"empty preference falls back to english", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LanguageCode(tt.preference); got != tt.want {
				t.Errorf("LanguageCode(%q) = %q, want %q", tt.preference, got, tt.want)
			}
		})
	}
}
