package process

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
	apiKey     string
)

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "feeds_config.yaml",
		"path to the feed-set configuration file (YAML or JSON)")
	Cmd.Flags().StringVarP(&feedName, "feed", "f", "", "process only the named feed group")
	Cmd.Flags().BoolVarP(&listFeeds, "list", "l", false, "list configured feed groups and exit")
	Cmd.Flags().StringVar(&apiKey, "api-key", "", "completion API key (overrides OPENAI_API_KEY)")
}

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Process configured feed groups into enriched JSON feeds",
	Long: `Process configured feed groups into enriched JSON feeds

- Fetch every source feed of the group and normalize the episodes
- Dump the raw episodes next to the output for inspection
- Filter by the group's keywords and cap to its episode budget
- Enrich the selection through the completion service and save the result`,
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

		// Resolve the credential before any network activity.
		completer, err := llm.New(llm.Config{APIKey: config.APIKey(apiKey)})
		if err != nil {
			return err
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
		return nil
	},
}

func processGroup(cmd *cobra.Command, p *pipeline.Pipeline, g config.FeedGroup) error {
	fmt.Printf("Processing feed: %s - %s\n", g.Name, g.Description)
	fmt.Printf("Sources: %s\n", strings.Join(g.Sources, ", "))

	outputFile := g.OutputFile
	if outputFile == "" {
		outputFile = g.Name + ".json"
	}
	rawFile := filepath.Join(filepath.Dir(outputFile), g.Name+"_raw.json")

	doc, err := p.Enrich(cmd.Context(), pipeline.Options{
		Sources:     g.Sources,
		Keywords:    g.FilterKeywords,
		MaxEpisodes: g.MaxEpisodes,
		OutputFile:  outputFile,
		RawFile:     rawFile,
		Prompt: prompt.Params{
			Variant:         prompt.VariantCurated,
			Interests:       g.Interests(),
			PrimaryInterest: g.PrimaryInterest,
			FeedName:        g.Name,
			FeedTitle:       g.Description,
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("Successfully created feed. Output saved to %s\n", outputFile)
	printSummary(doc, 3)
	return nil
}

// printSummary prints the produced feed title, track count and the first few
// track titles with their relevance line when the model supplied one.
func printSummary(doc output.Document, sampleSize int) {
	feeds, ok := doc["feeds"].([]any)
	if !ok || len(feeds) == 0 {
		return
	}
	first, ok := feeds[0].(map[string]any)
	if !ok {
		return
	}
	title, _ := first["title"].(string)
	tracks, _ := first["tracks"].([]any)
	fmt.Printf("\nCreated feed: %s\n", title)
	fmt.Printf("Total tracks: %d\n", len(tracks))

	if len(tracks) == 0 {
		return
	}
	fmt.Println("\nSample tracks:")
	for i, t := range tracks {
		if i >= sampleSize {
			break
		}
		track, ok := t.(map[string]any)
		if !ok {
			continue
		}
		trackTitle, _ := track["title"].(string)
		fmt.Printf("%d. %s\n", i+1, trackTitle)
		if relevance := relevanceLine(track); relevance != "" {
			if len(relevance) > 100 {
				relevance = relevance[:97] + "..."
			}
			fmt.Printf("   Relevance: %s\n", relevance)
		}
	}
}

func relevanceLine(track map[string]any) string {
	enrichment, ok := track["intelliparse_enrichment"].(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"relevance_match", "personal_relevance", "intelliparse_insight"} {
		if s, ok := enrichment[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
