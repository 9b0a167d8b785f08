package gemini

import (
	"context"
	"errors"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/cover-letter/internal/ai"
	"github.com/spigell/cover-letter/internal/company"
	"github.com/spigell/cover-letter/internal/letter"
	"github.com/spigell/cover-letter/internal/logger"
	"github.com/spigell/cover-letter/internal/profile"
	"github.com/spigell/cover-letter/internal/utils"
)

const (
	defaultMaxLogLength = 200

	systemInstruction = "You write professional cover letters in plain text. " +
		"Return only the letter, without headings, notes or markdown."
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

// Writer asks Gemini for a letter and tidies the answer.
type Writer struct {
	generator  contentGenerator
	store      *profile.Store
	researcher *company.Researcher
	emphasis   []string
	logger     *zap.Logger
	maxLogLen  int
}

var _ ai.Writer = (*Writer)(nil)

// WriterOption customizes a Writer.
type WriterOption func(*Writer)

// WithEmphasis wraps the given terms in <b> tags in every generated letter.
func WithEmphasis(terms []string) WriterOption {
	return func(w *Writer) {
		w.emphasis = append([]string(nil), terms...)
	}
}

// WithResearcher replaces the default company researcher.
func WithResearcher(r *company.Researcher) WriterOption {
	return func(w *Writer) {
		if r != nil {
			w.researcher = r
		}
	}
}

func NewWriter(generator contentGenerator, store *profile.Store, log *zap.Logger, maxLogLength int, opts ...WriterOption) *Writer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	w := &Writer{
		generator:  generator,
		store:      store,
		researcher: company.NewResearcher(nil),
		logger:     log,
		maxLogLen:  maxLogLength,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Generate(ctx context.Context, in letter.FormInput) (string, error) {
	if w.generator == nil {
		return "", errors.New("gemini generator is not configured")
	}
	if err := in.Validate(); err != nil {
		return "", err
	}
	in = in.Normalize()

	p := w.store.Profile()
	info := w.researcher.Research(in.CompanyName, in.CompanyWebsite)
	prompt := letter.BuildPrompt(p, info, in)

	log := logger.WithFields(w.logger, logger.FormFields(in.CompanyName, in.RoleName)...)
	log.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, w.maxLogLen)),
	)

	raw, err := w.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return "", err
	}

	log.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, w.maxLogLen)),
	)

	text := letter.Clean(raw, p.Name, in.CompanyName, in.RoleName)
	if len(w.emphasis) > 0 {
		text = letter.Emphasize(text, w.emphasis)
	}
	return text, nil
}

func (w *Writer) Model() string {
	if w == nil || w.generator == nil {
		return ""
	}
	return w.generator.Model()
}
