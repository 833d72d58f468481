package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleTags(t *testing.T) {
	t.Parallel()

	tags := SimpleTags("contact", "website")

	require.Len(t, tags, 2)
	require.Equal(t, struct{}{}, tags["contact"])
	require.Equal(t, struct{}{}, tags["website"])
	require.Empty(t, SimpleTags())
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		display  string
		addr     string
		expected string
	}{
		{
			name:     "quotes display name",
			display:  "Contact Form",
			addr:     "me@example.com",
			expected: `"Contact Form" <me@example.com>`,
		},
		{
			name:     "escapes quotes in display name",
			display:  `Say "hi"`,
			addr:     "me@example.com",
			expected: `"Say \"hi\"" <me@example.com>`,
		},
		{
			name:     "bare address without name",
			display:  "",
			addr:     "me@example.com",
			expected: "me@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, Recipient(tt.display, tt.addr))
		})
	}
}
