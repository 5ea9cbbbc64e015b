package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/longhorn/config"
	"github.com/katalvlaran/longhorn/logging"
	"github.com/katalvlaran/longhorn/referral"
	"github.com/katalvlaran/longhorn/session"
)

// app is what every command needs: settings, a logger and a loaded session.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	sess   *session.Session
	loaded session.LoadInfo
}

// loadConfig applies flags on top of config.Load.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("data"); f != nil && f.Changed {
		cfg.Data = f.Value.String()
	}
	if f := cmd.Flags().Lookup("case"); f != nil && f.Changed {
		cfg.Case, _ = cmd.Flags().GetInt("case")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newApp builds the logger and session without loading anything.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	sess := session.New(
		session.WithLogger(log),
		session.WithSocialWorkers(cfg.SocialWorkers),
		session.WithReferralOptions(referral.WithCostBase(cfg.CostBase)),
	)

	return &app{cfg: cfg, log: log, sess: sess}, nil
}

// openApp builds the app and loads the configured population.
func openApp(cmd *cobra.Command) (*app, error) {
	a, err := newApp(cmd)
	if err != nil {
		return nil, err
	}
	if err := a.load(cmd.Context()); err != nil {
		return nil, err
	}

	return a, nil
}

// load reads cfg.Data when set, the configured built-in case otherwise.
func (a *app) load(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		info session.LoadInfo
		err  error
	)
	if a.cfg.Data != "" {
		info, err = a.sess.LoadFile(ctx, a.cfg.Data)
	} else {
		info, err = a.sess.LoadCase(ctx, a.cfg.Case)
	}
	if err != nil {
		return fmt.Errorf("load population: %w", err)
	}
	a.loaded = info

	return nil
}

func (a *app) close() {
	_ = a.log.Sync()
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}
