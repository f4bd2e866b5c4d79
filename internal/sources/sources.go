// Package sources reads the user's list of image sources from sources.json
// in the application data directory.
package sources

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// FileName is the sources list inside the data directory
const FileName = "sources.json"

// ImageSource describes one place a wallpaper can come from. Only ID and
// Name are required; a source without ImageURL is listed but cannot be
// installed directly.
type ImageSource struct {
	ID                    string `json:"id" validate:"required"`
	Name                  string `json:"name" validate:"required"`
	BasePath              string `json:"base_path,omitempty"`
	ImageURL              string `json:"image_url,omitempty" validate:"omitempty,url"`
	Satellite             string `json:"satellite,omitempty"`
	Sector                string `json:"sector,omitempty"`
	Product               string `json:"product,omitempty"`
	Region                string `json:"region,omitempty"`
	ResolutionHintHigh    string `json:"resolution_hint_high,omitempty"`
	ResolutionHintLow     string `json:"resolution_hint_low,omitempty"`
	DefaultRefreshMinutes uint64 `json:"default_refresh_minutes,omitempty"`
	Attribution           string `json:"attribution,omitempty"`
	Favorite              bool   `json:"favorite,omitempty"`
}

// Config is the content of sources.json
type Config struct {
	Version uint32        `json:"version"`
	Sources []ImageSource `json:"sources" validate:"unique=ID,dive"`
}

// Installable returns the sources that carry a direct image URL, in file
// order
func (c *Config) Installable() []ImageSource {
	var out []ImageSource
	for _, s := range c.Sources {
		if s.ImageURL != "" {
			out = append(out, s)
		}
	}
	return out
}

// Find returns the source with the given id
func (c *Config) Find(id string) (ImageSource, bool) {
	for _, s := range c.Sources {
		if s.ID == id {
			return s, true
		}
	}
	return ImageSource{}, false
}

// Load reads and validates the sources file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s at %s: %w", FileName, path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a sources document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if cfg.Sources == nil {
		return nil, fmt.Errorf("failed to parse %s: missing \"sources\" list", FileName)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return &cfg, nil
}
