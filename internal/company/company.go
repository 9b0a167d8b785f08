// Package company infers a short description of the target company.
// Nothing is fetched: the information is guessed from the company name.
package company

import (
	"fmt"
	"strings"
)

const (
	IndustryTechnology = "Technology"
	IndustryFinance    = "Financial Services"
)

var defaultValues = []string{"Innovation", "Excellence", "Collaboration", "Growth"}

// Info describes the company a letter is addressed to.
type Info struct {
	Name        string   `json:"name"`
	Website     string   `json:"website,omitempty"`
	Description string   `json:"description"`
	Industry    string   `json:"industry"`
	Values      []string `json:"values"`
}

// Profile is the result of a successful classification.
type Profile struct {
	Industry    string
	Description string
}

// Classifier guesses the industry of a company by its name.
type Classifier interface {
	Classify(name string) (Profile, bool)
}

// Researcher produces Info for a company.
type Researcher struct {
	classifier Classifier
}

// NewResearcher returns a Researcher using the given classifier.
// The default keyword classifier is used when classifier is nil.
func NewResearcher(classifier Classifier) *Researcher {
	if classifier == nil {
		classifier = DefaultClassifier()
	}
	return &Researcher{classifier: classifier}
}

// Research never fails; unknown companies get a generic technology profile.
func (r *Researcher) Research(name, website string) Info {
	name = strings.TrimSpace(name)

	info := Info{
		Name:        name,
		Website:     strings.TrimSpace(website),
		Description: fmt.Sprintf("%s is a leading company known for innovation and excellence in its industry.", name),
		Industry:    IndustryTechnology,
		Values:      append([]string(nil), defaultValues...),
	}

	if r == nil || r.classifier == nil {
		return info
	}

	if p, ok := r.classifier.Classify(name); ok {
		if p.Industry != "" {
			info.Industry = p.Industry
		}
		if p.Description != "" {
			info.Description = p.Description
		}
	}

	return info
}
