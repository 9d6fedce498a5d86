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


package eventmatch

import (
	"log/slog"

	"github.com/poiesic/eventmatch/ai"
	"github.com/poiesic/eventmatch/ai/openai"
	"github.com/poiesic/eventmatch/ingestion"
	"github.com/poiesic/eventmatch/intent"
	"github.com/poiesic/eventmatch/recommend"
	"github.com/poiesic/eventmatch/storage"
	"github.com/poiesic/eventmatch/storage/badger"
	"github.com/poiesic/eventmatch/taxonomy"
)

// Engine bundles the storage backend, repositories, taxonomy, and
// optional AI provider behind one handle.
type Engine struct {
	backend   *badger.Backend
	eventRepo storage.EventRepository
	auditRepo storage.AuditRepository
	provider  ai.Provider
	taxonomy  *taxonomy.Taxonomy
	logger    *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	taxonomy *taxonomy.Taxonomy
	inMemory bool
}

// WithAIConfig enables the OpenAI-compatible AI services with the given
// configuration. Without it the engine runs fully deterministic.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a pre-built AI provider, overriding WithAIConfig.
// The engine takes ownership and closes it on Close.
func WithProvider(provider ai.Provider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithTaxonomy replaces the built-in tag taxonomy.
func WithTaxonomy(tax *taxonomy.Taxonomy) EngineOption {
	return func(o *engineOptions) {
		o.taxonomy = tax
	}
}

// WithInMemoryStorage opens the backend in memory, for tests and
// throwaway runs.
func WithInMemoryStorage() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		taxonomy: taxonomy.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create event repository
	eventRepo, err := badger.NewEventRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create audit repository
	auditRepo, err := badger.NewAuditRepository(backend)
	if err != nil {
		eventRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create AI provider when configured
	provider := options.provider
	if provider == nil && options.aiConfig != nil {
		provider, err = openai.NewProvider(options.aiConfig, intent.BuildCatalogue(options.taxonomy))
		if err != nil {
			auditRepo.Close()
			eventRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Engine{
		backend:   backend,
		eventRepo: eventRepo,
		auditRepo: auditRepo,
		provider:  provider,
		taxonomy:  options.taxonomy,
		logger:    slog.Default(),
	}, nil
}

func (e *Engine) Close() error {
	// Close AI provider first
	if e.provider != nil {
		if err := e.provider.Close(); err != nil {
			e.logger.Error("error closing AI provider", "err", err)
		}
	}

	// Close repositories
	if err := e.auditRepo.Close(); err != nil {
		e.logger.Error("error closing audit repository", "err", err)
		return err
	}
	if err := e.eventRepo.Close(); err != nil {
		e.logger.Error("error closing event repository", "err", err)
		return err
	}

	// Close backend
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (e *Engine) EventRepository() storage.EventRepository {
	return e.eventRepo
}

func (e *Engine) AuditRepository() storage.AuditRepository {
	return e.auditRepo
}

func (e *Engine) Taxonomy() *taxonomy.Taxonomy {
	return e.taxonomy
}

// HasAI reports whether an AI provider is attached.
func (e *Engine) HasAI() bool {
	return e.provider != nil
}

func (e *Engine) NewRecommender(opts ...recommend.Option) (*recommend.Recommender, error) {
	return recommend.NewRecommender(e.taxonomy, e.provider, e.eventRepo, e.auditRepo, opts...)
}

func (e *Engine) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	var tagger ai.EventTagger
	if e.provider != nil {
		tagger = e.provider.EventTagger()
	}
	return ingestion.NewPipeline(e.eventRepo, tagger, opts...)
}
