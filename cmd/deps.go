package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/cover-letter/internal/ai"
	"github.com/spigell/cover-letter/internal/ai/gemini"
	"github.com/spigell/cover-letter/internal/backend"
	"github.com/spigell/cover-letter/internal/company"
	"github.com/spigell/cover-letter/internal/letter"
	"github.com/spigell/cover-letter/internal/logger"
	"github.com/spigell/cover-letter/internal/profile"
	"github.com/spigell/cover-letter/internal/secrets"
)

const providerGemini = "gemini"

var errAIDisabled = errors.New("ai provider is disabled")

func newProfileStore(cfg ProfileConfig) (*profile.Store, error) {
	p := cfg.CandidateProfile
	if path := strings.TrimSpace(cfg.ResumeFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading resume from %q: %w", path, err)
		}
		p = p.WithDefaults(profile.ParseResume(string(data)))
	}
	return profile.NewStore(p)
}

func newResearcher(cfg *CompanyConfig) *company.Researcher {
	if cfg == nil {
		return company.NewResearcher(nil)
	}
	return company.NewResearcher(company.NewClassifierFromLists(cfg.Technology, cfg.Finance))
}

func newBackendClient(cfg *BackendConfig, log *zap.Logger) *backend.Client {
	client := backend.New(log.With(zap.String("component", "backend")), cfg.URL, cfg.Timeout)
	if ua := strings.TrimSpace(cfg.UserAgent); ua != "" {
		client.UserAgent = ua
	}
	return client
}

// newAIWriter builds the language model writer. It returns errAIDisabled when
// the provider is "none" or no api key is available for the default provider.
func newAIWriter(ctx context.Context, cfg *AIConfig, store *profile.Store, researcher *company.Researcher, log *zap.Logger) (ai.Writer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	switch provider {
	case "none":
		return nil, errAIDisabled
	case "", providerGemini:
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	keySource := secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	}

	// An unset provider only switches on when a key is around.
	if provider == "" && !secrets.Configured(keySource) {
		return nil, errAIDisabled
	}

	apiKey, err := secrets.Load(keySource)
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithCommonFields(log, providerGemini, cfg.Gemini.Model).With(
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, genLogger, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries)
	if err != nil {
		return nil, err
	}

	writerLogger := logger.WithCommonFields(log, providerGemini, generator.Model())

	return gemini.NewWriter(generator, store, writerLogger, cfg.Gemini.MaxLogLength,
		gemini.WithResearcher(researcher),
		gemini.WithEmphasis(emphasisTerms(cfg)),
	), nil
}

// emphasisTerms returns the configured terms or letter.DefaultEmphasis when
// the list is left empty.
func emphasisTerms(cfg *AIConfig) []string {
	if cfg == nil || len(cfg.Emphasize) == 0 {
		return letter.DefaultEmphasis
	}
	return cfg.Emphasize
}
