package profile

import (
	"reflect"
	"testing"
)

const sampleResume = `Jane Doe
jane@example.com | https://jane.example.com | +1 555 0100

EDUCATION
MSc in Computer Science, Example University
BSc in Mathematics, Example College

Work Experience:
Acme - Backend Engineer (2021 - 2024)
Initech - Software Engineer (2019 - 2021)

TECHNICAL SKILLS
Go
PostgreSQL
Kubernetes

Research Projects
job-radar - automated job search digest
`

func TestParseResume(t *testing.T) {
	t.Parallel()

	p := ParseResume(sampleResume)

	want := CandidateProfile{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Website:    "https://jane.example.com",
		Education:  []string{"MSc in Computer Science, Example University", "BSc in Mathematics, Example College"},
		Experience: []string{"Acme - Backend Engineer (2021 - 2024)", "Initech - Software Engineer (2019 - 2021)"},
		Skills:     []string{"Go", "PostgreSQL", "Kubernetes"},
		Projects:   []string{"job-radar - automated job search digest"},
	}

	if !reflect.DeepEqual(p, want) {
		t.Fatalf("unexpected profile:\n got: %+v\nwant: %+v", p, want)
	}
}

func TestParseResumeEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  CandidateProfile
	}{
		{
			name:  "empty text",
			input: "  \n\n",
			want:  CandidateProfile{},
		},
		{
			name:  "name only",
			input: "\n  Sam Roe  \n",
			want:  CandidateProfile{Name: "Sam Roe"},
		},
		{
			name:  "sentences mentioning headings stay in their section",
			input: "Sam Roe\nEXPERIENCE\nBuilt skills matrix tooling for the platform team\nSkills:\nGo",
			want: CandidateProfile{
				Name:       "Sam Roe",
				Experience: []string{"Built skills matrix tooling for the platform team"},
				Skills:     []string{"Go"},
			},
		},
		{
			name:  "lines before any heading without contacts are ignored",
			input: "Sam Roe\nBerlin, Germany\nPROJECTS\nhh-bot",
			want:  CandidateProfile{Name: "Sam Roe", Projects: []string{"hh-bot"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseResume(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected profile:\n got: %+v\nwant: %+v", got, tt.want)
			}
		})
	}
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	configured := CandidateProfile{Name: "Jane Q. Doe", Phone: "+1 555 0100", Skills: []string{" "}}
	got := configured.WithDefaults(ParseResume(sampleResume))

	if got.Name != "Jane Q. Doe" {
		t.Fatalf("configured name must win, got %q", got.Name)
	}
	if got.Email != "jane@example.com" || got.Phone != "+1 555 0100" {
		t.Fatalf("unexpected contacts: %+v", got)
	}
	if !reflect.DeepEqual(got.Skills, []string{"Go", "PostgreSQL", "Kubernetes"}) {
		t.Fatalf("blank skills must be filled from the resume, got %v", got.Skills)
	}
	if len(got.Experience) != 2 {
		t.Fatalf("expected experience from the resume, got %v", got.Experience)
	}
}

func TestRelevantEntries(t *testing.T) {
	t.Parallel()

	p := CandidateProfile{
		Experience: []string{"Netflix - ML Engineering Intern", "CMU - Research Assistant", "CRED - Senior SDE", "LinkedIn - SDE"},
		Skills:     []string{"Python", "Java", "Machine Learning", "NLP", "PyTorch", "Flask", "AWS"},
	}

	tests := []struct {
		name     string
		got      []string
		expected []string
	}{
		{
			name:     "experience matches keywords ignoring case",
			got:      p.RelevantExperience([]string{"sde"}),
			expected: []string{"CRED - Senior SDE", "LinkedIn - SDE"},
		},
		{
			name:     "experience falls back to the first three",
			got:      p.RelevantExperience([]string{"haskell"}),
			expected: []string{"Netflix - ML Engineering Intern", "CMU - Research Assistant", "CRED - Senior SDE"},
		},
		{
			name:     "experience without keywords is returned whole",
			got:      p.RelevantExperience(nil),
			expected: p.Experience,
		},
		{
			name:     "skills match any keyword",
			got:      p.RelevantSkills([]string{"learning", "torch"}),
			expected: []string{"Machine Learning", "PyTorch"},
		},
		{
			name:     "skills fall back to the first five",
			got:      p.RelevantSkills([]string{"  ", "rust"}),
			expected: []string{"Python", "Java", "Machine Learning", "NLP", "PyTorch"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}
