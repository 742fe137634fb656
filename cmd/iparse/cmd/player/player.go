package player

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"intelliparse/internal/config"
	"intelliparse/internal/feed"
	"intelliparse/internal/llm"
	"intelliparse/internal/logging"
	"intelliparse/internal/output"
	"intelliparse/internal/pipeline"
	"intelliparse/internal/prompt"
)

var (
	configPath string
	feedName   string
	listFeeds  bool
	enrich     bool
	outputDir  string
	apiKey     string
)

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "feeds_config.yaml",
		"path to the feed-set configuration file (YAML or JSON)")
	Cmd.Flags().StringVarP(&feedName, "feed", "f", "", "process only the named feed group")
	Cmd.Flags().BoolVarP(&listFeeds, "list", "l", false, "list configured feed groups and exit")
	Cmd.Flags().BoolVar(&enrich, "enrich", false, "route the selection through the completion service")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "player_feeds", "directory for player-compatible feed files")
	Cmd.Flags().StringVar(&apiKey, "api-key", "", "completion API key (only used with --enrich)")
}

// Cmd represents the player command
var Cmd = &cobra.Command{
	Use:   "player",
	Short: `Process feed groups into the "Did you hear that?" player format`,
	Long: `Process feed groups into the "Did you hear that?" player format

- Without --enrich, episodes are projected directly; no API key is needed
- With --enrich, the completion service reformats the selection instead
- Tracks without a resolvable audio URL are dropped, never emitted empty`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := config.LoadFeedSet(configPath)
		if err != nil {
			return err
		}

		if listFeeds {
			fmt.Println("Available feeds:")
			for i, g := range fs.Feeds {
				fmt.Printf("%d. %s - %s\n", i+1, g.Name, g.Description)
			}
			return nil
		}

		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		logger := logging.MustNewLogger(verbose)
		defer logger.Sync()

		var completer llm.Completer
		if enrich {
			c, err := llm.New(llm.Config{APIKey: config.APIKey(apiKey)})
			if err != nil {
				return err
			}
			completer = c
		}

		groups := fs.Feeds
		if feedName != "" {
			g, ok := fs.Find(feedName)
			if !ok {
				return fmt.Errorf("feed %q not found in configuration", feedName)
			}
			groups = []config.FeedGroup{g}
		}

		p := pipeline.New(feed.NewFetcher(logger), completer, logger)

		success := 0
		for _, g := range groups {
			if err := processGroup(cmd, p, g); err != nil {
				fmt.Printf("Error processing feed %s: %v\n", g.Name, err)
			} else {
				success++
			}
			fmt.Println("\n" + strings.Repeat("-", 50) + "\n")
		}
		fmt.Printf("Processed %d/%d feeds successfully.\n", success, len(groups))
		fmt.Printf("Player-compatible feeds saved to %s/\n", outputDir)
		return nil
	},
}

func processGroup(cmd *cobra.Command, p *pipeline.Pipeline, g config.FeedGroup) error {
	fmt.Printf("Processing feed: %s - %s\n", g.Name, g.Description)

	opts := pipeline.Options{
		Sources:     g.Sources,
		Keywords:    g.FilterKeywords,
		MaxEpisodes: g.MaxEpisodes,
		OutputFile:  filepath.Join(outputDir, output.SanitizeID(g.Name)+".json"),
		Prompt: prompt.Params{
			Variant:         prompt.VariantPlayer,
			Interests:       g.Interests(),
			PrimaryInterest: g.PrimaryInterest,
			FeedName:        g.Name,
			FeedTitle:       g.Description,
		},
	}

	if enrich {
		if _, err := p.Enrich(cmd.Context(), opts); err != nil {
			return err
		}
		fmt.Printf("Successfully created enriched player feed. Output saved to %s\n", opts.OutputFile)
		return nil
	}

	doc, err := p.Player(cmd.Context(), opts)
	if err != nil {
		return err
	}
	fmt.Printf("Successfully created player feed. Output saved to %s\n", opts.OutputFile)
	fmt.Printf("Total tracks: %d\n", len(doc.Feeds[0].Tracks))
	return nil
}
