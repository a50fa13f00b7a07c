package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/logger"
	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/provider/gemini"
	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/provider/language"
	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/provider/resumeapi"
	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/scoring"
	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	outputJSON = "json"
	outputText = "text"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume file]",
	Short: "Score a resume for ATS compatibility",
	Long: "Score reads resume text from the given file (or stdin when omitted or '-') " +
		"and prints a score with suggestions. Remote providers fall back to the " +
		"built-in heuristic scorer on any failure.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		score(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("provider", "p", "", "scoring provider: local, resume-api, gemini or language (default from config, then local)")
	scoreCmd.Flags().String("job-description", "", "optional file with the target job description")
	scoreCmd.Flags().StringP("output", "o", outputText, "output format: text or json")
	scoreCmd.Flags().Bool("choose-provider", false, "pick the provider interactively")
}

// score is the main command for the cli.
func score(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the ats-scorer", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	text, err := readInput(args)
	if err != nil {
		logger.Fatal("reading resume text", zap.Error(err))
	}

	jobDescription, err := readOptionalFile(cmd.Flag("job-description").Value.String())
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}

	preference, err := resolvePreference(cmd, config)
	if err != nil {
		logger.Fatal("resolving provider preference", zap.Error(err))
	}

	logger.Info("scoring resume",
		zap.String("provider", preference.String()),
		zap.Int("text_length", len(text)),
		zap.Bool("job_description", jobDescription != ""),
	)

	catalog := scoring.Default()
	orchestrator := scoring.NewOrchestrator(
		scoring.NewLocalScorer(catalog, logger),
		buildProviders(ctx, config, catalog, logger),
		logger,
	)

	result := orchestrator.GetScore(ctx, scoring.Request{
		Text:           text,
		JobDescription: jobDescription,
	}, preference)

	if err := printResult(cmd.Flag("output").Value.String(), result); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func readOptionalFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func resolvePreference(cmd *cobra.Command, config *Config) (scoring.Preference, error) {
	if cmd.Flag("choose-provider").Value.String() == "true" {
		items := make([]string, 0, len(scoring.Preferences()))
		for _, pref := range scoring.Preferences() {
			items = append(items, pref.String())
		}

		prompt := promptui.Select{
			Label: "Choose a scoring provider",
			Items: items,
		}

		_, selected, err := prompt.Run()
		if err != nil {
			return "", err
		}
		return scoring.ParsePreference(selected)
	}

	if flag := cmd.Flag("provider").Value.String(); flag != "" {
		return scoring.ParsePreference(flag)
	}

	return scoring.ParsePreference(config.Provider)
}

// buildProviders wires every remote provider whose configuration is
// complete. Missing configuration only logs: the local scorer covers
// whatever is absent.
func buildProviders(ctx context.Context, config *Config, catalog *scoring.Catalog, zlog *zap.Logger) map[scoring.Preference]scoring.Provider {
	providers := make(map[scoring.Preference]scoring.Provider)

	if p, err := buildResumeAPI(config.ResumeAPI, zlog); err != nil {
		zlog.Warn("resume-api provider unavailable", zap.Error(err))
	} else {
		providers[scoring.PreferenceResumeAPI] = p
	}

	if p, err := buildGemini(ctx, config.Gemini, catalog, zlog); err != nil {
		zlog.Warn("gemini provider unavailable", zap.Error(err))
	} else {
		providers[scoring.PreferenceGemini] = p
	}

	if p, err := buildLanguage(config.Language, zlog); err != nil {
		zlog.Warn("language provider unavailable", zap.Error(err))
	} else {
		providers[scoring.PreferenceLanguage] = p
	}

	return providers
}

func buildResumeAPI(cfg *ResumeAPIConfig, zlog *zap.Logger) (scoring.Provider, error) {
	if cfg == nil || strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("resume-api base url is not configured")
	}

	token, err := secrets.Load(secrets.Source{
		Name: "resume api token",
		File: cfg.TokenFile,
		Env:  "RESUME_API_TOKEN",
	})
	if err != nil {
		return nil, err
	}

	client := resumeapi.NewClient(cfg.BaseURL, token, zlog)
	return resumeapi.NewScorer(client, logger.WithCommonFields(zlog, "resume-api", "")), nil
}

func buildGemini(ctx context.Context, cfg *GeminiConfig, catalog *scoring.Catalog, zlog *zap.Logger) (scoring.Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("gemini configuration is not set")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Model)
	if err != nil {
		return nil, err
	}

	scorerLogger := logger.WithCommonFields(zlog, "gemini", generator.Model())
	return gemini.NewScorer(generator, catalog, scorerLogger, cfg.MaxLogLength), nil
}

func buildLanguage(cfg *LanguageConfig, zlog *zap.Logger) (scoring.Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("language configuration is not set")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "language api key",
		File: cfg.APIKeyFile,
		Env:  "LANGUAGE_API_KEY",
	})
	if err != nil {
		return nil, err
	}

	client := language.NewClient(apiKey, zlog)
	if strings.TrimSpace(cfg.BaseURL) != "" {
		client.APIURL = cfg.BaseURL
	}

	return language.NewScorer(client, logger.WithCommonFields(zlog, "language", "")), nil
}

func printResult(format string, result *scoring.Result) error {
	switch format {
	case outputJSON:
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(pretty))
	case outputText:
		fmt.Printf("Score: %d/100 (provider: %s)\n", result.Score, result.Provider)
		if result.Breakdown != nil {
			fmt.Printf("  keyword match:   %d\n", result.Breakdown.KeywordMatch)
			fmt.Printf("  formatting:      %d\n", result.Breakdown.Formatting)
			fmt.Printf("  structure:       %d\n", result.Breakdown.Structure)
			fmt.Printf("  content quality: %d\n", result.Breakdown.ContentQuality)
		}
		if len(result.Keywords) > 0 {
			fmt.Printf("Matched keywords: %s\n", strings.Join(result.Keywords, ", "))
		}
		if len(result.MissingKeywords) > 0 {
			fmt.Printf("Missing keywords: %s\n", strings.Join(result.MissingKeywords, ", "))
		}
		for _, suggestion := range result.Suggestions {
			fmt.Printf("- %s\n", suggestion)
		}
	default:
		return fmt.Errorf("invalid output format: %s", format)
	}

	return nil
}
