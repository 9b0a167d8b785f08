package profile

import (
	"regexp"
	"strings"
)

const (
	relevantExperienceLimit = 3
	relevantSkillsLimit     = 5
)

var (
	emailRe   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	websiteRe = regexp.MustCompile(`https?://[^\s|,;]+`)
)

// Section headings in the order they are checked. A heading line switches the
// section that following lines are collected into.
var resumeSections = []struct {
	keyword string
	target  func(p *CandidateProfile) *[]string
}{
	{keyword: "EDUCATION", target: func(p *CandidateProfile) *[]string { return &p.Education }},
	{keyword: "EXPERIENCE", target: func(p *CandidateProfile) *[]string { return &p.Experience }},
	{keyword: "SKILLS", target: func(p *CandidateProfile) *[]string { return &p.Skills }},
	{keyword: "PROJECTS", target: func(p *CandidateProfile) *[]string { return &p.Projects }},
}

// ParseResume builds a profile from a plain text resume. The first non-empty
// line is the name. Lines before the first heading may carry an email and a
// website. Headings are lines like "EDUCATION", "Work Experience:" or
// "RESEARCH PROJECTS"; every line after a heading belongs to its section.
func ParseResume(text string) CandidateProfile {
	var (
		p       CandidateProfile
		current *[]string
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if target := sectionFor(&p, line); target != nil {
			current = target
			continue
		}

		switch {
		case current != nil:
			*current = append(*current, line)
		case p.Name == "":
			p.Name = line
		default:
			if p.Email == "" {
				p.Email = emailRe.FindString(line)
			}
			if p.Website == "" {
				p.Website = websiteRe.FindString(line)
			}
		}
	}

	return p
}

func sectionFor(p *CandidateProfile, line string) *[]string {
	heading := strings.TrimSuffix(line, ":")
	upper := strings.ToUpper(heading)

	// A heading is either shouted or short enough to be a title.
	if heading != upper && len(strings.Fields(heading)) > 2 {
		return nil
	}

	for _, s := range resumeSections {
		if strings.Contains(upper, s.keyword) {
			return s.target(p)
		}
	}
	return nil
}

// WithDefaults fills every empty field of p from d.
func (p CandidateProfile) WithDefaults(d CandidateProfile) CandidateProfile {
	p.Name = firstNonEmpty(p.Name, d.Name)
	p.Email = firstNonEmpty(p.Email, d.Email)
	p.Phone = firstNonEmpty(p.Phone, d.Phone)
	p.Website = firstNonEmpty(p.Website, d.Website)
	if len(compact(p.Education)) == 0 {
		p.Education = cloneStrings(d.Education)
	}
	if len(compact(p.Experience)) == 0 {
		p.Experience = cloneStrings(d.Experience)
	}
	if len(compact(p.Skills)) == 0 {
		p.Skills = cloneStrings(d.Skills)
	}
	if len(compact(p.Projects)) == 0 {
		p.Projects = cloneStrings(d.Projects)
	}
	return p
}

// RelevantExperience returns the experience entries that mention any of the
// keywords, or the first few entries when none does.
func (p CandidateProfile) RelevantExperience(keywords []string) []string {
	return relevant(p.Experience, keywords, relevantExperienceLimit)
}

// RelevantSkills is RelevantExperience for skills.
func (p CandidateProfile) RelevantSkills(keywords []string) []string {
	return relevant(p.Skills, keywords, relevantSkillsLimit)
}

func relevant(items, keywords []string, limit int) []string {
	needles := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			needles = append(needles, k)
		}
	}
	if len(needles) == 0 {
		return cloneStrings(items)
	}

	var matched []string
	for _, item := range items {
		lower := strings.ToLower(item)
		for _, n := range needles {
			if strings.Contains(lower, n) {
				matched = append(matched, item)
				break
			}
		}
	}

	if len(matched) > 0 {
		return matched
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return cloneStrings(items)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
