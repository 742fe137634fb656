package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const defaultMaxEpisodes = 30

// FeedSet is the feed-set configuration file: named feed groups, each with
// source URLs, interests, keyword filters, an episode cap and an output path.
// YAML is a superset of JSON, so legacy feeds_config.json files load as-is.
type FeedSet struct {
	Feeds []FeedGroup `yaml:"feeds" json:"feeds" validate:"required,min=1,dive"`
}

// FeedGroup describes one named feed to produce.
type FeedGroup struct {
	Name                string   `yaml:"name" json:"name" validate:"required"`
	Description         string   `yaml:"description" json:"description"`
	PrimaryInterest     string   `yaml:"primary_interest" json:"primary_interest"`
	AdditionalInterests []string `yaml:"additional_interests" json:"additional_interests"`
	Sources             []string `yaml:"sources" json:"sources" validate:"required,min=1,dive,url"`
	FilterKeywords      []string `yaml:"filter_keywords" json:"filter_keywords"`
	MaxEpisodes         int      `yaml:"max_episodes" json:"max_episodes" validate:"gte=0"`
	OutputFile          string   `yaml:"output_file" json:"output_file"`
}

// Interests returns the primary interest followed by the additional ones.
func (g FeedGroup) Interests() []string {
	if g.PrimaryInterest == "" {
		return g.AdditionalInterests
	}
	return append([]string{g.PrimaryInterest}, g.AdditionalInterests...)
}

// LoadFeedSet reads, validates and defaults a feed-set configuration file.
func LoadFeedSet(path string) (*FeedSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fs FeedSet
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validator.New().Struct(&fs); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	for i := range fs.Feeds {
		if fs.Feeds[i].MaxEpisodes == 0 {
			fs.Feeds[i].MaxEpisodes = defaultMaxEpisodes
		}
	}

	return &fs, nil
}

// Find returns the feed group with the given name.
func (fs *FeedSet) Find(name string) (FeedGroup, bool) {
	for _, g := range fs.Feeds {
		if g.Name == name {
			return g, true
		}
	}
	return FeedGroup{}, false
}
