package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cover-letter/internal/letter"
	"github.com/spigell/cover-letter/internal/logger"
	"github.com/spigell/cover-letter/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter for a company",
	Run: func(cmd *cobra.Command, _ []string) {
		generate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd.Flags())
}

func addGenerateFlags(flags *pflag.FlagSet) {
	flags.StringP("company", "c", "", "company name")
	flags.StringP("website", "w", "", "company website")
	flags.StringP("role", "r", "", "role name")
	flags.String("jd-file", "", "file with the job description")
	flags.StringP("output", "o", "", "directory to save the letter to. Default is stdout only.")
	flags.Bool("plain", false, "strip emphasis markup from the letter")
	flags.Bool("no-prompt", false, "do not ask for missing fields interactively")
}

func generate(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the cover letter generation", zap.String("version", version))

	store, err := newProfileStore(config.Profile)
	if err != nil {
		logger.Fatal("loading candidate profile",
			zap.Error(err),
			zap.String("hint", "fill the 'profile' section of the configuration file or set profile.resume-file"),
		)
	}

	in, err := readForm(cmd)
	if err != nil {
		logger.Fatal("reading form input", zap.Error(err))
	}

	var remote letter.Remote
	if config.Backend.Enabled {
		remote = newBackendClient(config.Backend, logger)
	}

	orchestrator := letter.New(store, newResearcher(config.Company), remote, config.Timeout, logger)

	res, err := orchestrator.Resolve(cmd.Context(), in)
	if err != nil {
		if letter.IsValidation(err) {
			logger.Fatal("invalid input", zap.Error(err))
		}
		logger.Fatal("generating a cover letter", zap.Error(err))
	}

	text := res.Letter
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		text = render.PlainText(text)
	}

	in = in.Normalize()
	title := render.Title(in.CompanyName, in.RoleName)

	if err := writeLetter(cmd.OutOrStdout(), title, text); err != nil {
		logger.Fatal("printing a cover letter", zap.Error(err))
	}

	if dir, _ := cmd.Flags().GetString("output"); strings.TrimSpace(dir) != "" {
		path, err := render.Save(dir, title, text)
		if err != nil {
			logger.Fatal("saving a cover letter", zap.Error(err))
		}
		logger.Info("cover letter saved",
			zap.String("filename", path),
			zap.String("letter_source", string(res.Source)),
		)
	}
}

func writeLetter(w io.Writer, title, text string) error {
	_, err := fmt.Fprintf(w, "%s\n\n%s\n", title, text)
	return err
}

// readForm collects the form from flags and asks for whatever is missing.
func readForm(cmd *cobra.Command) (letter.FormInput, error) {
	flags := cmd.Flags()

	company, _ := flags.GetString("company")
	website, _ := flags.GetString("website")
	role, _ := flags.GetString("role")
	jdFile, _ := flags.GetString("jd-file")
	noPrompt, _ := flags.GetBool("no-prompt")

	in := letter.FormInput{
		CompanyName:    company,
		CompanyWebsite: website,
		RoleName:       role,
	}

	if jdFile = strings.TrimSpace(jdFile); jdFile != "" {
		data, err := os.ReadFile(jdFile)
		if err != nil {
			return in, fmt.Errorf("reading job description from %q: %w", jdFile, err)
		}
		in.RoleDescription = string(data)
	}

	if noPrompt || strings.TrimSpace(in.CompanyName) != "" {
		return in, nil
	}

	fields := []struct {
		label    string
		target   *string
		required bool
	}{
		{label: "Company Name", target: &in.CompanyName, required: true},
		{label: "Company Website (optional)", target: &in.CompanyWebsite},
		{label: "Role Name (optional)", target: &in.RoleName},
	}

	for _, f := range fields {
		if strings.TrimSpace(*f.target) != "" {
			continue
		}

		prompt := promptui.Prompt{Label: f.label}
		if f.required {
			prompt.Validate = requireNonEmpty
		}

		value, err := prompt.Run()
		if err != nil {
			return in, fmt.Errorf("prompt %q: %w", f.label, err)
		}
		*f.target = value
	}

	return in, nil
}

func requireNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}
