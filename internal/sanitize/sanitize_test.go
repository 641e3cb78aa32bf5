package sanitize

import "testing"

func TestText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text untouched", "slept badly, anxious about work", "slept badly, anxious about work"},
		{"script stripped", `before<script>alert(1)</script>after`, "beforeafter"},
		{"tags stripped, text kept", "<b>good</b> day", "good day"},
		{"entities decoded", "tea & biscuits", "tea & biscuits"},
		{"whitespace trimmed", "  breathing helped  ", "breathing helped"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Text(tc.input); got != tc.want {
				t.Errorf("Text(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
