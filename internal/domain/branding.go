package domain

import "strings"

const (
	headlineMarker = "[NEW HEADLINE]"
	aboutMarker    = "[NEW ABOUT]"
)

type ProfileRewrite struct {
	Headline string
	About    string
	Raw      string
}

// ParseRewrite splits model output on the [NEW HEADLINE] and [NEW ABOUT] markers.
// Missing markers leave the corresponding field empty; Raw always keeps the full text.
func ParseRewrite(text string) ProfileRewrite {
	rewrite := ProfileRewrite{Raw: strings.TrimSpace(text)}

	headlineAt := strings.Index(text, headlineMarker)
	aboutAt := strings.Index(text, aboutMarker)

	if headlineAt >= 0 {
		start := headlineAt + len(headlineMarker)
		end := len(text)
		if aboutAt > headlineAt {
			end = aboutAt
		}
		rewrite.Headline = strings.TrimSpace(text[start:end])
	}

	if aboutAt >= 0 {
		start := aboutAt + len(aboutMarker)
		end := len(text)
		if headlineAt > aboutAt {
			end = headlineAt
		}
		rewrite.About = strings.TrimSpace(text[start:end])
	}

	return rewrite
}
