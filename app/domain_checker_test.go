package app

import "testing"

func TestDomainLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"CalendarIQ", "calendariq"},
		{"Brand Forge", "brandforge"},
		{"név-42!", "nv42"},
		{"  Spaced  Out  ", "spacedout"},
		{"123go", "123go"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DomainLabel(tc.in); got != tc.want {
			t.Errorf("DomainLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
