package main

import (
	"os"

	"github.com/campusware/registrar/internal/audit"
	"github.com/campusware/registrar/internal/config"
	"github.com/campusware/registrar/internal/logger"
	"github.com/campusware/registrar/internal/registrar"
	"github.com/campusware/registrar/internal/shell"
	"github.com/campusware/registrar/internal/storage"
	"github.com/campusware/registrar/internal/store"
	"github.com/campusware/registrar/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("data_dir", cfg.DataDir).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Campus Registrar")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Wire Store, Codec, and Engine ─────────────────────────────────
	st := store.New()
	codec := storage.NewCodec(cfg, log)
	auditLog := audit.New(cfg.AuditPath())
	svc := registrar.New(st, codec, auditLog, log)

	if err := svc.Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load collections")
	}

	// ─── Run Menu Loop ─────────────────────────────────────────────────
	// The loop saves all collections on exit, including end of input.
	sh := shell.New(svc, os.Stdin, os.Stdout, log)
	if err := sh.Run(); err != nil {
		log.Fatal().Err(err).Msg("Session ended with error")
	}
}
