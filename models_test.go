package main

import "testing"

func TestTicketIsOpen(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"Open", true},
		{"open", true},
		{"OPEN", true},
		{"  Open  ", true},
		{"Closed", false},
		{"closed", false},
		{"", false},
		{"Reopened", false},
	}
	for _, tt := range tests {
		if got := (Ticket{Status: tt.status}).IsOpen(); got != tt.want {
			t.Errorf("IsOpen(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
