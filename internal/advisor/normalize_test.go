package advisor

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"headache", "headache"},
		{"Chest Pain", "chest_pain"},
		{"shortness of breath", "shortness_of_breath"},
		{" fever", "_fever"},
		{"chest  pain", "chest__pain"},
		{"sore-throat!", "sore-throat!"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
