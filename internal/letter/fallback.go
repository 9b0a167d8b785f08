package letter

import (
	"fmt"
	"strings"

	"github.com/spigell/cover-letter/internal/company"
	"github.com/spigell/cover-letter/internal/profile"
)

const (
	greeting  = "Dear Hiring Manager,"
	signOff   = "Sincerely,"
	maxSkills = 8
)

// Fallback builds a four paragraph letter from the profile, the company
// description and the form input. The output depends only on its arguments.
func Fallback(p profile.CandidateProfile, info company.Info, in FormInput) string {
	in = in.Normalize()

	roleText := "a position"
	if in.RoleName != "" {
		roleText = fmt.Sprintf("the %s position", in.RoleName)
	}

	paragraphs := []string{
		greeting,
		introParagraph(p, roleText, in.CompanyName),
		experienceParagraph(p),
		skillsParagraph(p),
		companyParagraph(info, in.CompanyName),
		closing(p.Name),
	}

	return strings.Join(paragraphs, "\n\n")
}

func introParagraph(p profile.CandidateProfile, roleText, companyName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I am writing to express my strong interest in %s at %s.", roleText, companyName)

	if len(p.Education) > 0 {
		fmt.Fprintf(&b, " My background combines %s with hands-on industry experience,", trimPeriod(p.Education[0]))
	} else {
		b.WriteString(" My background combines hands-on industry experience with a passion for building reliable products,")
	}
	b.WriteString(" and I am excited about the opportunity to contribute to your team.")

	return b.String()
}

func experienceParagraph(p profile.CandidateProfile) string {
	if len(p.Experience) == 0 {
		return "Throughout my career I have focused on delivering reliable, high-impact work, which has prepared me well for the challenges of this role."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Most recently: %s.", trimPeriod(p.Experience[0]))

	if len(p.Experience) > 1 {
		earlier := make([]string, 0, len(p.Experience)-1)
		for _, exp := range p.Experience[1:] {
			earlier = append(earlier, trimPeriod(exp))
		}
		fmt.Fprintf(&b, " Before that: %s.", strings.Join(earlier, "; "))
	}
	b.WriteString(" This experience has prepared me well for the challenges of this role.")

	return b.String()
}

func skillsParagraph(p profile.CandidateProfile) string {
	skills := p.Skills
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}

	var parts []string
	if len(skills) > 0 {
		parts = append(parts, fmt.Sprintf("My technical expertise includes %s.", strings.Join(skills, ", ")))
	}

	if len(p.Projects) > 0 {
		projects := make([]string, 0, len(p.Projects))
		for _, proj := range p.Projects {
			projects = append(projects, trimPeriod(proj))
		}
		parts = append(parts, fmt.Sprintf("Outside of my day-to-day work I have built %s.", strings.Join(projects, "; ")))
	}

	if len(parts) == 0 {
		return "I continuously invest in my technical skills and enjoy picking up new tools and domains quickly."
	}

	return strings.Join(parts, " ")
}

func companyParagraph(info company.Info, companyName string) string {
	return fmt.Sprintf(
		"%s I am particularly drawn to %s's innovative approach and believe my background would allow me to make meaningful contributions to your team. "+
			"I would welcome the opportunity to discuss how my experience and passion for technology can benefit %s. Thank you for your consideration.",
		strings.TrimSpace(info.Description), companyName, companyName,
	)
}

func closing(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return signOff
	}
	return signOff + "\n" + name
}

func trimPeriod(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".")
}
