// Package pipeline sequences one run: fetch, normalize, filter, cap, then
// either the enrichment branch (serialize, prompt, complete, extract) or the
// direct player projection. Execution is fully sequential; a run is a single
// blocking pass with no retries.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"intelliparse/internal/extract"
	"intelliparse/internal/feed"
	"intelliparse/internal/llm"
	"intelliparse/internal/output"
	"intelliparse/internal/prompt"
)

// Source supplies episodes, replacing the fetch+normalize stages. Call sites
// use it to rerun saved episode dumps without touching the network.
type Source func(ctx context.Context) ([]feed.Episode, error)

// Options configures one run.
type Options struct {
	Sources     []string // feed URLs, fetched in order
	Keywords    []string // OR-matched against title+summary; empty keeps all
	MaxEpisodes int      // cap after filtering; <=0 means no cap
	Prompt      prompt.Params
	OutputFile  string // written only on success; empty skips persistence
	RawFile     string // pre-filter episode dump; empty skips it
	Episodes    Source // optional override of the fetch stage
}

type Pipeline struct {
	fetcher   *feed.Fetcher
	completer llm.Completer
	logger    *zap.Logger
}

func New(fetcher *feed.Fetcher, completer llm.Completer, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		fetcher:   fetcher,
		completer: completer,
		logger:    logger,
	}
}

// Enrich runs the generative branch and returns the enriched document.
// Any failure past ingestion aborts the run without writing output.
func (p *Pipeline) Enrich(ctx context.Context, opts Options) (output.Document, error) {
	episodes, err := p.collect(ctx, opts)
	if err != nil {
		return nil, err
	}

	instruction := prompt.Build(opts.Prompt, prompt.TextBlob(episodes))

	if p.completer == nil {
		return nil, fmt.Errorf("no completion client configured")
	}
	reply, err := p.completer.Complete(ctx, instruction)
	if err != nil {
		return nil, err
	}

	parsed, err := extract.Extract(reply)
	if err != nil {
		return nil, err
	}
	doc, err := output.AcceptEnrichment(parsed)
	if err != nil {
		return nil, err
	}

	if opts.OutputFile != "" {
		if err := output.WriteJSON(opts.OutputFile, doc); err != nil {
			return nil, err
		}
		p.logger.Info("saved enriched feed", zap.String("file", opts.OutputFile))
	}
	return doc, nil
}

// Player runs the non-generative branch, projecting episodes straight into
// the player contract.
func (p *Pipeline) Player(ctx context.Context, opts Options) (output.PlayerDocument, error) {
	episodes, err := p.collect(ctx, opts)
	if err != nil {
		return output.PlayerDocument{}, err
	}

	doc := output.ToPlayerDocument(episodes, opts.Prompt.FeedName, opts.Prompt.FeedTitle, p.logger)

	if opts.OutputFile != "" {
		if err := output.WriteJSON(opts.OutputFile, doc); err != nil {
			return output.PlayerDocument{}, err
		}
		p.logger.Info("saved player feed",
			zap.String("file", opts.OutputFile),
			zap.Int("tracks", len(doc.Feeds[0].Tracks)))
	}
	return doc, nil
}

// collect produces the filtered, capped episode sequence shared by both
// branches. The raw dump, when requested, is written before filtering.
func (p *Pipeline) collect(ctx context.Context, opts Options) ([]feed.Episode, error) {
	var episodes []feed.Episode
	var err error
	if opts.Episodes != nil {
		episodes, err = opts.Episodes(ctx)
		if err != nil {
			return nil, fmt.Errorf("episode source failed: %w", err)
		}
	} else {
		episodes = p.fetcher.FetchAll(ctx, opts.Sources)
	}
	p.logger.Info("fetched episodes", zap.Int("count", len(episodes)))

	if opts.RawFile != "" {
		if err := output.WriteJSON(opts.RawFile, episodes); err != nil {
			return nil, err
		}
	}

	episodes = feed.Keep(episodes, opts.Keywords)
	if len(opts.Keywords) > 0 {
		p.logger.Info("filtered episodes", zap.Int("count", len(episodes)))
	}
	if opts.MaxEpisodes > 0 && len(episodes) > opts.MaxEpisodes {
		p.logger.Info("limiting episodes", zap.Int("max", opts.MaxEpisodes))
		episodes = feed.Cap(episodes, opts.MaxEpisodes)
	}
	return episodes, nil
}
