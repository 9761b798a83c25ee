package main

import (
	"context"

	"equihire/screening-engine/internal/config"
	"equihire/screening-engine/internal/logging"
	"equihire/screening-engine/internal/ner"
	"equihire/screening-engine/internal/repositories"
	"equihire/screening-engine/internal/services"
)

// collaborators holds the optional external clients. A nil field means the
// capability is unavailable and its routes answer 503.
type collaborators struct {
	profiles repositories.ProfileRepository
	storage  services.StorageService
	gemini   services.GeminiService
	index    services.ProfileIndex
}

func (c *collaborators) status() map[string]bool {
	return map[string]bool{
		"database": c.profiles != nil,
		"storage":  c.storage != nil,
		"llm":      c.gemini != nil,
		"index":    c.index != nil,
	}
}

// initCollaborators builds every configured client. Failures are logged and
// leave the collaborator unset; startup continues.
func initCollaborators(ctx context.Context, cfg *config.Config, redactor *ner.Redactor) *collaborators {
	log := logging.GetLogger()
	c := &collaborators{}

	// Initialize database
	db, err := config.InitDatabase(cfg)
	switch {
	case err != nil:
		log.WithError(err).Error("❌ Failed to initialize database. Profile updates are disabled.")
	case db != nil:
		c.profiles = repositories.NewProfileRepository(db)
	}

	// Initialize storage
	if cfg.Storage.Enabled() {
		c.storage = services.NewStorageService(cfg.Storage)
		log.Info("✅ R2 storage initialized successfully")
	} else {
		log.Warn("R2 credentials missing. Reveal and CV download are disabled.")
	}

	// Initialize Gemini AI
	if cfg.Gemini.Enabled() {
		gemini, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.EmbedModel)
		if err != nil {
			log.WithError(err).Error("❌ Failed to initialize Gemini AI. Intelligence features are disabled.")
		} else {
			c.gemini = gemini
			log.Info("✅ Gemini AI initialized successfully")
		}
	} else {
		log.Warn("GEMINI_API_KEY missing. Intelligence features are disabled.")
	}

	// Initialize Qdrant
	if cfg.Qdrant.Enabled() && c.gemini != nil {
		qdrantService, err := services.NewQdrantService(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
		)
		if err != nil {
			log.WithError(err).Error("❌ Failed to initialize Qdrant. Profile search is disabled.")
			return c
		}

		if err := qdrantService.InitCollection(ctx); err != nil {
			log.WithError(err).Error("❌ Failed to initialize Qdrant collection. Profile search is disabled.")
			return c
		}

		c.index = services.NewProfileIndex(c.gemini, qdrantService, redactor)
		log.Info("✅ Qdrant initialized successfully")
	}

	return c
}
