package discord

import (
	"strings"
	"testing"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Cooldown with remaining time",
			input:    "API error: action 'venture' on cooldown: 4m 3s remaining",
			expected: MsgCooldownActive + "\nWait for: **4m 3s**",
		},
		{
			name:     "Cooldown without time",
			input:    "something is on cooldown",
			expected: MsgCooldownActive,
		},
		{
			name:     "Actor not found",
			input:    "API error: Adventurer not found",
			expected: MsgActorNotFound,
		},
		{
			name:     "Unknown location",
			input:    "API error: Unknown venture location",
			expected: MsgUnknownLocation,
		},
		{
			name:     "Unrecognized error passes through",
			input:    "the sky fell",
			expected: "❌ the sky fell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatFriendlyError(tt.input)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestHeartsBar(t *testing.T) {
	bar := heartsBar(2, 4)
	if strings.Count(bar, "❤️") != 2 || strings.Count(bar, "🖤") != 2 {
		t.Errorf("expected 2 full and 2 empty hearts, got %q", bar)
	}

	if heartsBar(0, 0) != "—" {
		t.Errorf("expected placeholder for zero max hearts")
	}
}
