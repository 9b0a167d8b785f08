package company

import (
	"strings"
	"testing"
)

func TestResearchDefaultClassifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		company         string
		industry        string
		descriptionPart string
	}{
		{
			name:            "technology keyword",
			company:         "Google Inc",
			industry:        IndustryTechnology,
			descriptionPart: "Google Inc is a leading technology company",
		},
		{
			name:            "finance keyword",
			company:         "Goldman Sachs",
			industry:        IndustryFinance,
			descriptionPart: "Goldman Sachs is a prominent financial institution",
		},
		{
			name:            "multi word finance keyword is case insensitive",
			company:         "WELLS FARGO & Co",
			industry:        IndustryFinance,
			descriptionPart: "WELLS FARGO & Co is a prominent financial institution",
		},
		{
			name:            "unknown company gets generic profile",
			company:         "Acme Corp",
			industry:        IndustryTechnology,
			descriptionPart: "Acme Corp is a leading company known for innovation and excellence in its industry.",
		},
	}

	researcher := NewResearcher(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := researcher.Research(tt.company, " https://example.com ")
			if info.Industry != tt.industry {
				t.Fatalf("expected industry %q, got %q", tt.industry, info.Industry)
			}
			if !strings.Contains(info.Description, tt.descriptionPart) {
				t.Fatalf("unexpected description: %q", info.Description)
			}
			if info.Website != "https://example.com" {
				t.Fatalf("expected trimmed website, got %q", info.Website)
			}
			if len(info.Values) != 4 {
				t.Fatalf("expected default values, got %v", info.Values)
			}
		})
	}
}

func TestTechnologyRuleWinsOverFinance(t *testing.T) {
	t.Parallel()

	info := NewResearcher(nil).Research("Amazon Bank of America Joint Venture", "")
	if info.Industry != IndustryTechnology {
		t.Fatalf("expected technology rule to be checked first, got %q", info.Industry)
	}
}

type staticClassifier struct {
	profile Profile
	ok      bool
}

func (s staticClassifier) Classify(string) (Profile, bool) { return s.profile, s.ok }

func TestResearchCustomClassifier(t *testing.T) {
	t.Parallel()

	researcher := NewResearcher(staticClassifier{
		profile: Profile{Industry: "Healthcare"},
		ok:      true,
	})

	info := researcher.Research("Clinic", "")
	if info.Industry != "Healthcare" {
		t.Fatalf("expected custom industry, got %q", info.Industry)
	}
	if !strings.HasPrefix(info.Description, "Clinic is a leading company") {
		t.Fatalf("expected generic description to be kept, got %q", info.Description)
	}
}

func TestNewClassifierFromLists(t *testing.T) {
	t.Parallel()

	classifier := NewClassifierFromLists([]string{" Stripe ", ""}, nil)

	if _, ok := classifier.Classify("Google"); ok {
		t.Fatal("expected custom technology list to replace the default one")
	}

	p, ok := classifier.Classify("stripe payments")
	if !ok || p.Industry != IndustryTechnology {
		t.Fatalf("expected stripe to be technology, got %+v (ok=%v)", p, ok)
	}

	p, ok = classifier.Classify("JPMorgan Chase")
	if !ok || p.Industry != IndustryFinance {
		t.Fatalf("expected default finance list, got %+v (ok=%v)", p, ok)
	}
}
