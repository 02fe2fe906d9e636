package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Skufu/medadvisor/internal/advisor"
	"github.com/Skufu/medadvisor/internal/config"
	"github.com/Skufu/medadvisor/internal/knowledge"
	"github.com/Skufu/medadvisor/internal/logging"
)

// app holds what every subcommand shares. It is populated by the root
// command's pre-run hook.
type app struct {
	v          *viper.Viper
	configFile string

	cfg      *config.Config
	log      *logrus.Logger
	store    *knowledge.Store
	pool     *pgxpool.Pool
	analyzer *advisor.Analyzer
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "medadvisor",
		Short: "Rule-based symptom, medication and first-aid advisor",
		Long: `medadvisor maps reported symptoms, medication names and emergency situations
onto a small curated knowledge base and prints structured guidance.

It is an informational aid, not a diagnostic tool.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Path to a config file (yaml, json or toml)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "text", "Log format: text or json")
	flags.String("knowledge", "", "Load the knowledge base from this YAML file instead of the built-in one")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("knowledge.file", flags.Lookup("knowledge"))

	root.AddCommand(
		newAnalyzeCmd(a),
		newMedicationCmd(a),
		newFirstAidCmd(),
		newChatCmd(),
		newKnowledgeCmd(a),
		newServeCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Flags().Changed("knowledge") {
		a.v.Set("knowledge.source", config.SourceFile)
	}

	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	a.cfg = cfg

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log

	store, err := a.loadKnowledge(cmd.Context())
	if err != nil {
		return fmt.Errorf("load knowledge base: %w", err)
	}
	a.store = store
	a.analyzer = advisor.NewAnalyzer(store, log)

	log.WithFields(logrus.Fields{
		"source":      cfg.Knowledge.Source,
		"symptoms":    len(store.Symptoms()),
		"conditions":  len(store.Conditions()),
		"medications": len(store.Medications()),
	}).Debug("knowledge base loaded")

	return nil
}

func (a *app) loadKnowledge(ctx context.Context) (*knowledge.Store, error) {
	switch a.cfg.Knowledge.Source {
	case config.SourceFile:
		return knowledge.LoadFile(a.cfg.Knowledge.File)
	case config.SourcePostgres:
		pool, err := knowledge.Connect(ctx, a.cfg.Knowledge.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.pool = pool
		return knowledge.LoadPostgres(ctx, pool)
	default:
		return knowledge.Builtin()
	}
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}

// printJSON writes v indented, without HTML escaping, followed by a newline.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
