package letter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultEmphasis lists the terms highlighted when ai.emphasize is left empty.
var DefaultEmphasis = []string{
	"Netflix",
	"LinkedIn",
	"CRED",
	"CMU",
	"graduating in December 2025",
	"+13%",
	"CMOS + 0.2",
	"CMOS +0.2",
	"Carnegie Mellon University",
	"granular and implicit human preferences",
	"Routers In LLMs",
	"Multimodal Web Agents",
	"25%",
}

var closings = []string{"Sincerely", "Best regards", "Thank you"}

// Clean normalizes a model generated letter: placeholders are filled,
// separator paragraphs are dropped, and greeting and sign-off are ensured.
func Clean(text, name, companyName, role string) string {
	if _, after, ok := strings.Cut(text, "REGULAR VERSION:"); ok {
		text = after
	}
	if before, _, ok := strings.Cut(text, "BOLD VERSION:"); ok {
		text = before
	}

	if strings.TrimSpace(role) == "" {
		role = "the position"
	}

	text = strings.NewReplacer(
		"\r\n", "\n",
		"[COMPANY]", companyName,
		"[ROLE]", role,
		"[NAME]", name,
	).Replace(text)

	paragraphs := make([]string, 0)
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" || strings.HasPrefix(para, "---") {
			continue
		}
		paragraphs = append(paragraphs, para)
	}

	if len(paragraphs) == 0 || !strings.HasPrefix(paragraphs[0], "Dear") {
		paragraphs = append([]string{greeting}, paragraphs...)
	}

	if !hasAnyPrefix(paragraphs[len(paragraphs)-1], closings) {
		paragraphs = append(paragraphs, closing(name))
	}

	return strings.Join(paragraphs, "\n\n")
}

// Emphasize wraps every standalone occurrence of the terms in <b> tags.
// Matching ignores case and keeps the original spelling of the text.
func Emphasize(text string, terms []string) string {
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		key := strings.ToLower(term)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		text = emphasizeTerm(text, term)
	}
	return text
}

func emphasizeTerm(text, term string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))

	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if !standalone(text, start, end) || alreadyBold(text, start, end) {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString("<b>")
		b.WriteString(text[start:end])
		b.WriteString("</b>")
		last = end
	}

	if last == 0 {
		return text
	}

	b.WriteString(text[last:])
	return b.String()
}

// standalone reports whether text[start:end] is not glued to a word character.
func standalone(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func alreadyBold(text string, start, end int) bool {
	return strings.HasSuffix(text[:start], "<b>") && strings.HasPrefix(text[end:], "</b>")
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
