// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package taxonomy

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk taxonomy override format.
type fileConfig struct {
	UsageTags    []Definition        `yaml:"usage_tags"`
	IndustryTags []Definition        `yaml:"industry_tags"`
	Related      map[string][]string `yaml:"related"`
	Synonyms     map[string]string   `yaml:"synonyms"`
}

// Load reads taxonomy overrides from r and merges them over the built-in
// defaults. File definitions replace defaults with the same tag ID; file
// synonym and related entries are added to the default tables.
func Load(r io.Reader) (*Taxonomy, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("taxonomy: parse config: %w", err)
	}

	for _, def := range append(append([]Definition{}, cfg.UsageTags...), cfg.IndustryTags...) {
		if def.ID == "" {
			return nil, fmt.Errorf("taxonomy: tag definition without id")
		}
	}

	usage := append(append([]Definition{}, defaultUsageTags...), cfg.UsageTags...)
	industry := append(append([]Definition{}, defaultIndustryTags...), cfg.IndustryTags...)

	related := make(map[string][]string, len(defaultRelatedTags)+len(cfg.Related))
	for id, rel := range defaultRelatedTags {
		related[id] = rel
	}
	for id, rel := range cfg.Related {
		related[id] = rel
	}

	synonyms := make(map[string]string, len(defaultGoalSynonyms)+len(cfg.Synonyms))
	for phrase, tag := range defaultGoalSynonyms {
		synonyms[phrase] = tag
	}
	for phrase, tag := range cfg.Synonyms {
		synonyms[phrase] = tag
	}

	return New(usage, industry, related, synonyms), nil
}

// LoadFile reads taxonomy overrides from a YAML file and merges them
// over the built-in defaults.
func LoadFile(path string) (*Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}
