package main

import "testing"

func TestFormatTicketID(t *testing.T) {
	tests := []struct {
		location string
		year     int
		position int64
		want     string
	}{
		{"Toronto", 2025, 42, "TOR-25-42"},
		{"Berlin", 2024, 1, "BER-24-1"},
		{"NY", 2025, 7, "NY-25-7"},
		{"Toronto", 2009, 123, "TOR-09-123"},
	}
	for _, tt := range tests {
		if got := FormatTicketID(tt.location, tt.year, tt.position); got != tt.want {
			t.Errorf("FormatTicketID(%q, %d, %d) = %q, want %q",
				tt.location, tt.year, tt.position, got, tt.want)
		}
	}
}
