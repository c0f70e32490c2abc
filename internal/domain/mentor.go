package domain

import "strings"

const (
	defaultMentorName    = "LinkedIn Member"
	defaultMentorLink    = "#"
	defaultMentorSnippet = "No snippet available."
)

type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type Mentor struct {
	Name    string
	Link    string
	Snippet string
	Pitch   string
}

// MentorFromResult fills blanks with display defaults and drops the "- LinkedIn" title suffix.
func MentorFromResult(result SearchResult) Mentor {
	name := strings.TrimSpace(strings.ReplaceAll(result.Title, "- LinkedIn", ""))
	if name == "" {
		name = defaultMentorName
	}

	link := strings.TrimSpace(result.Link)
	if link == "" {
		link = defaultMentorLink
	}

	snippet := strings.TrimSpace(result.Snippet)
	if snippet == "" {
		snippet = defaultMentorSnippet
	}

	return Mentor{Name: name, Link: link, Snippet: snippet}
}

// CleanSearchQuery strips fences and wrapping quotes the model sometimes adds.
func CleanSearchQuery(raw string) string {
	query := StripFences(raw)
	query = strings.TrimSpace(query)
	query = strings.Trim(query, "\"'`")
	return strings.TrimSpace(query)
}

// StripFences removes markdown code fences around model output.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if newline := strings.IndexByte(s, '\n'); newline >= 0 && !strings.Contains(s[:newline], " ") {
		s = s[newline+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
