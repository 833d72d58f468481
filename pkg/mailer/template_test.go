package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate_WithFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte(`---
Subject: "[Contact] {{.Subject}}"
Author: System
---
<h2>New message</h2>
`)

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.Equal(t, "[Contact] {{.Subject}}", tmpl.Metadata["Subject"])
	require.Equal(t, "System", tmpl.Metadata["Author"])
	require.Equal(t, "<h2>New message</h2>\n", tmpl.Body)

	subject, ok := tmpl.Subject()
	require.True(t, ok)
	require.Equal(t, "[Contact] {{.Subject}}", subject)
}

func TestParseTemplate_WithoutFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte("Name: {{.Name}}\nEmail: {{.Email}}")

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.Empty(t, tmpl.Metadata)
	require.Equal(t, string(content), tmpl.Body)

	_, ok := tmpl.Subject()
	require.False(t, ok)
}

func TestParseTemplate_EmptyFrontmatter(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"no lines":         "---\n---\nBody content here.",
		"whitespace lines": "---\n\n  \n---\nBody content here.",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(content))
			require.NoError(t, err)
			require.Empty(t, tmpl.Metadata)
			require.Equal(t, "Body content here.", tmpl.Body)
		})
	}
}

func TestParseTemplate_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"missing closing delimiter": "---\nSubject: Test\nBody without closing delimiter",
		"nothing after opening":     "---",
		"only opening line":         "---\n",
		"invalid yaml":              "---\nSubject: Test\nInvalidYAML: [unclosed\n---\nBody",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(content))
			require.ErrorIs(t, err, ErrInvalidFrontmatter)
			require.Nil(t, tmpl)
		})
	}
}

func TestParseTemplate_LineEndings(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unix":    "---\nSubject: Test\n---\nBody",
		"windows": "---\r\nSubject: Test\r\n---\r\nBody",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(content))
			require.NoError(t, err)
			require.Equal(t, "Test", tmpl.Metadata["Subject"])
			require.Equal(t, "Body", tmpl.Body)
		})
	}
}

func TestParseTemplate_BodyWithDelimiters(t *testing.T) {
	t.Parallel()

	content := []byte("---\nSubject: Test\n---\nabove\n---\nbelow")

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.Equal(t, "above\n---\nbelow", tmpl.Body)
}

func TestParseTemplate_EmptyContent(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate(nil)
	require.NoError(t, err)
	require.Empty(t, tmpl.Metadata)
	require.Empty(t, tmpl.Body)
}
