package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/cover-letter/internal/company"
	"github.com/spigell/cover-letter/internal/letter"
	"github.com/spigell/cover-letter/internal/profile"
	"github.com/spigell/cover-letter/internal/server"
)

const testConfig = `
timeout: 3s
profile:
  name: Jane Doe
  email: jane@example.com
  skills:
    - Go
backend:
  url: http://letters.internal:8080
  timeout: 20s
company:
  technology:
    - acme
ai:
  provider: none
  emphasize:
    - CMU
server:
  listen: 127.0.0.1:9000
`

func loadTestConfig(t *testing.T, content string) *Config {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "cover-letter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	config, err := getConfig()
	require.NoError(t, err)
	return config
}

func TestGetConfig(t *testing.T) {
	config := loadTestConfig(t, testConfig)

	assert.Equal(t, "Jane Doe", config.Profile.Name)
	assert.Equal(t, []string{"Go"}, config.Profile.Skills)
	assert.Equal(t, "3s", config.Timeout.String())
	assert.Equal(t, "http://letters.internal:8080", config.Backend.URL)
	assert.Equal(t, "20s", config.Backend.Timeout.String())
	assert.Equal(t, []string{"acme"}, config.Company.Technology)
	assert.Equal(t, "none", config.AI.Provider)
	assert.Equal(t, []string{"CMU"}, config.AI.Emphasize)
	assert.NotNil(t, config.AI.Gemini)
	assert.Equal(t, "127.0.0.1:9000", config.Server.Listen)
}

func TestGetConfigDefaults(t *testing.T) {
	config := loadTestConfig(t, "profile:\n  name: Sam\n")

	require.NotNil(t, config.Backend)
	assert.True(t, config.Backend.Enabled)
	assert.NotNil(t, config.Company)
	assert.NotNil(t, config.AI.Gemini)
	assert.NotNil(t, config.Server)
}

func TestListenAddr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:9000", listenAddr(&ServerConfig{Listen: "127.0.0.1:9000", Port: 1}))
	assert.Equal(t, ":8080", listenAddr(&ServerConfig{Port: 8080}))
	assert.Equal(t, server.DefaultListen, listenAddr(&ServerConfig{}))
}

func TestNewResearcherUsesConfiguredKeywords(t *testing.T) {
	info := newResearcher(&CompanyConfig{Finance: []string{"acme"}}).Research("Acme Capital", "")
	assert.Equal(t, company.IndustryFinance, info.Industry)

	info = newResearcher(nil).Research("Google", "")
	assert.Equal(t, company.IndustryTechnology, info.Industry)
}

func TestNewAIWriter(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	store, err := profile.NewStore(profile.CandidateProfile{Name: "Jane Doe"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		cfg     *AIConfig
		wantErr error
		message string
	}{
		{
			name:    "explicitly disabled",
			cfg:     &AIConfig{Provider: "none", Gemini: &GeminiConfig{APIKey: "key"}},
			wantErr: errAIDisabled,
		},
		{
			name:    "no key for default provider",
			cfg:     &AIConfig{Gemini: &GeminiConfig{}},
			wantErr: errAIDisabled,
		},
		{
			name:    "unsupported provider",
			cfg:     &AIConfig{Provider: "openai", Gemini: &GeminiConfig{}},
			message: "unsupported ai provider: openai",
		},
		{
			name:    "gemini without key",
			cfg:     &AIConfig{Provider: "gemini", Gemini: &GeminiConfig{}},
			message: "gemini api key is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, err := newAIWriter(context.Background(), tt.cfg, store, nil, zap.NewNop())
			require.Error(t, err)
			assert.Nil(t, writer)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func newFormCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "generate"}
	addGenerateFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestReadFormFromFlags(t *testing.T) {
	jd := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(jd, []byte("Build ranking models"), 0o600))

	in, err := readForm(newFormCommand(t,
		"--company", "Netflix",
		"--website", "netflix.com",
		"--role", "ML Engineer",
		"--jd-file", jd,
	))
	require.NoError(t, err)

	assert.Equal(t, "Netflix", in.CompanyName)
	assert.Equal(t, "netflix.com", in.CompanyWebsite)
	assert.Equal(t, "ML Engineer", in.RoleName)
	assert.Equal(t, "Build ranking models", in.RoleDescription)
}

func TestReadFormWithoutPrompt(t *testing.T) {
	in, err := readForm(newFormCommand(t, "--no-prompt"))
	require.NoError(t, err)
	assert.Empty(t, in.CompanyName)
	assert.True(t, letter.IsValidation(in.Validate()))
}

func TestReadFormMissingJobDescription(t *testing.T) {
	_, err := readForm(newFormCommand(t, "--company", "Acme", "--jd-file", filepath.Join(t.TempDir(), "absent")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading job description")
}

func TestRequireNonEmpty(t *testing.T) {
	assert.Error(t, requireNonEmpty("  "))
	assert.NoError(t, requireNonEmpty("Acme"))
}

func TestEmphasisTerms(t *testing.T) {
	assert.Equal(t, letter.DefaultEmphasis, emphasisTerms(&AIConfig{}))
	assert.Equal(t, letter.DefaultEmphasis, emphasisTerms(nil))
	assert.Equal(t, []string{"CMU"}, emphasisTerms(&AIConfig{Emphasize: []string{"CMU"}}))
}

func TestWriteLetterUsesCommandOutput(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{Use: "generate"}
	cmd.SetOut(&out)

	require.NoError(t, writeLetter(cmd.OutOrStdout(), "Cover Letter at Acme", "Dear Hiring Manager,"))
	assert.Equal(t, "Cover Letter at Acme\n\nDear Hiring Manager,\n", out.String())
}

func TestNewProfileStoreFromResume(t *testing.T) {
	resume := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte("Sam Roe\nsam@example.com\n\nSKILLS\nGo\nKafka\n"), 0o600))

	config := loadTestConfig(t, "profile:\n  resume-file: "+resume+"\n  projects:\n    - hh-bot\n")
	assert.Equal(t, resume, config.Profile.ResumeFile)

	store, err := newProfileStore(config.Profile)
	require.NoError(t, err)

	p := store.Profile()
	assert.Equal(t, "Sam Roe", p.Name)
	assert.Equal(t, "sam@example.com", p.Email)
	assert.Equal(t, []string{"Go", "Kafka"}, p.Skills)
	assert.Equal(t, []string{"hh-bot"}, p.Projects)
}

func TestNewProfileStoreMissingResume(t *testing.T) {
	_, err := newProfileStore(ProfileConfig{ResumeFile: filepath.Join(t.TempDir(), "absent.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading resume")
}
