package letter

import (
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/spigell/cover-letter/internal/company"
	"github.com/spigell/cover-letter/internal/profile"
)

//go:embed prompt.md
var promptTemplate string

const (
	notSpecified = "Not specified"
	DefaultRole  = "General Position"
)

// BuildPrompt renders the instruction sent to a language model.
func BuildPrompt(p profile.CandidateProfile, info company.Info, in FormInput) string {
	in = in.Normalize()

	roleDescription := ""
	if in.RoleDescription != "" {
		roleDescription = "Role Description: " + in.RoleDescription + "\n"
	}

	keywords := roleKeywords(in.RoleName)

	replacer := strings.NewReplacer(
		"{{NAME}}", orNotSpecified(p.Name),
		"{{EMAIL}}", orNotSpecified(p.Email),
		"{{PHONE}}", orNotSpecified(p.Phone),
		"{{WEBSITE}}", orNotSpecified(p.Website),
		"{{EDUCATION}}", bullets(p.Education),
		"{{EXPERIENCE}}", bullets(p.Experience),
		"{{SKILLS}}", orNotSpecified(strings.Join(p.Skills, ", ")),
		"{{PROJECTS}}", bullets(p.Projects),
		"{{RELEVANT_EXPERIENCE}}", bullets(p.RelevantExperience(keywords)),
		"{{RELEVANT_SKILLS}}", orNotSpecified(strings.Join(p.RelevantSkills(keywords), ", ")),
		"{{COMPANY_NAME}}", orNotSpecified(info.Name),
		"{{COMPANY_WEBSITE}}", orNotSpecified(info.Website),
		"{{COMPANY_INDUSTRY}}", orNotSpecified(info.Industry),
		"{{COMPANY_DESCRIPTION}}", orNotSpecified(info.Description),
		"{{ROLE_DESCRIPTION}}", roleDescription,
		"{{ROLE}}", in.RoleOrDefault(DefaultRole),
	)

	return strings.TrimSpace(replacer.Replace(promptTemplate))
}

// roleKeywords splits a role name into lowercase words of two or more letters.
func roleKeywords(role string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(role)) {
		word = strings.Trim(word, ",.;:()/-")
		if utf8.RuneCountInString(word) >= 2 {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

func bullets(items []string) string {
	if len(items) == 0 {
		return notSpecified
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

func orNotSpecified(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return notSpecified
	}
	return s
}
