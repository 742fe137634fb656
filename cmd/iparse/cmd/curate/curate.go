package curate

import (
	"fmt"

	"github.com/spf13/cobra"

	"intelliparse/internal/config"
	"intelliparse/internal/feed"
	"intelliparse/internal/llm"
	"intelliparse/internal/logging"
	"intelliparse/internal/pipeline"
	"intelliparse/internal/prompt"
)

var (
	feedURLs   []string
	interests  []string
	keywords   []string
	maxCount   int
	outputFile string
	userName   string
	apiKey     string
)

func init() {
	Cmd.Flags().StringSliceVarP(&feedURLs, "feeds", "f", nil, "podcast RSS feed URLs")
	Cmd.Flags().StringSliceVarP(&interests, "interests", "i", nil, "user interest tags")
	Cmd.Flags().StringSliceVarP(&keywords, "keywords", "k", nil, "keyword filter over title and summary")
	Cmd.Flags().IntVarP(&maxCount, "max-episodes", "m", 30, "cap on episodes sent for enrichment")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "intelliparse_output.json", "output JSON file path")
	Cmd.Flags().StringVarP(&userName, "user", "u", "", "build a personalized feed for the named user")
	Cmd.Flags().StringVar(&apiKey, "api-key", "", "completion API key (overrides OPENAI_API_KEY)")

	Cmd.MarkFlagRequired("feeds")
}

// Cmd represents the curate command
var Cmd = &cobra.Command{
	Use:   "curate",
	Short: "Curate an enriched feed from ad-hoc feed URLs and interests",
	Long: `Curate an enriched feed from ad-hoc feed URLs and interests

- One-shot alternative to a configuration file
- With --user, the prompt asks for a feed personalized for that user`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		logger := logging.MustNewLogger(verbose)
		defer logger.Sync()

		completer, err := llm.New(llm.Config{APIKey: config.APIKey(apiKey)})
		if err != nil {
			return err
		}

		params := prompt.Params{
			Variant:   prompt.VariantCurated,
			Interests: interests,
		}
		if userName != "" {
			params.Variant = prompt.VariantPersonal
			params.UserName = userName
		}

		p := pipeline.New(feed.NewFetcher(logger), completer, logger)

		fmt.Printf("Processing %d feeds...\n", len(feedURLs))
		doc, err := p.Enrich(cmd.Context(), pipeline.Options{
			Sources:     feedURLs,
			Keywords:    keywords,
			MaxEpisodes: maxCount,
			OutputFile:  outputFile,
			Prompt:      params,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Successfully processed feeds. Output saved to %s\n", outputFile)

		if feeds, ok := doc["feeds"].([]any); ok && len(feeds) > 0 {
			if first, ok := feeds[0].(map[string]any); ok {
				title, _ := first["title"].(string)
				tracks, _ := first["tracks"].([]any)
				fmt.Printf("\nCreated feed: %s\n", title)
				fmt.Printf("Total tracks: %d\n", len(tracks))
			}
		}
		return nil
	},
}
