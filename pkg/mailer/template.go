package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

// Template is a template file split into front matter and body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// Subject returns the Subject front matter key, if set to a string.
func (t *Template) Subject() (string, bool) {
	s, ok := t.Metadata["Subject"].(string)
	return s, ok && s != ""
}

// ParseTemplate splits a template file into YAML front matter and body.
// Front matter is optional; it is delimited by "---" lines at the very top.
func ParseTemplate(content []byte) (*Template, error) {
	first, rest := cutLine(content)
	if !isDelim(first) {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: nothing after opening delimiter", ErrInvalidFrontmatter)
	}

	var header bytes.Buffer
	for len(rest) > 0 {
		var line []byte
		line, rest = cutLine(rest)
		if isDelim(line) {
			meta := map[string]any{}
			if len(bytes.TrimSpace(header.Bytes())) > 0 {
				if err := yaml.Unmarshal(header.Bytes(), &meta); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
				}
			}
			return &Template{Metadata: meta, Body: string(rest)}, nil
		}
		header.Write(bytes.TrimRight(line, "\r"))
		header.WriteByte('\n')
	}

	return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
}

func cutLine(b []byte) (line, rest []byte) {
	line, rest, _ = bytes.Cut(b, []byte("\n"))
	return line, rest
}

func isDelim(line []byte) bool {
	return string(bytes.TrimRight(line, "\r")) == frontMatterDelim
}
