package cmd

import (
	"context"
	"os"

	"github.com/pangya-tools/panglib/internal/config"
	"github.com/pangya-tools/panglib/locale"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type envKey struct{}

// env is the state shared by every subcommand, built once per invocation.
type env struct {
	cfg      *config.Config
	log      *logrus.Logger
	encoding *locale.Codec // from --encoding, nil when unset
}

// codecFor returns the text codec for path: --encoding first, then the
// config file rules.
func (e *env) codecFor(path string) (*locale.Codec, error) {
	if e.encoding != nil {
		return e.encoding, nil
	}

	codec, err := e.cfg.CodecFor(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not pick an encoding for %s", path)
	}

	return codec, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "panglib",
	Short: "Inspect and build PangYa client assets",
	Long: `panglib reads and writes the localized string tables (.dat),
fixed-record item tables (.iff) and asset bundles used by the PangYa client.

The text encoding of a file follows its name (korea.dat is EUC-KR,
japan.dat is Shift-JIS, ...). Use --encoding or the config file to override.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, e))

		return nil
	},
}

func newEnv(cmd *cobra.Command) (*env, error) {
	configPath, _ := cmd.Flags().GetString("config")
	level, _ := cmd.Flags().GetString("log-level")
	encoding, _ := cmd.Flags().GetString("encoding")

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "could not load config")
		}
		cfg = loaded
	}
	if level == "" {
		level = cfg.Logging.Level
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	log.SetLevel(lvl)

	e := &env{cfg: cfg, log: log}
	if encoding != "" {
		cp, err := locale.ParseCodePage(encoding)
		if err != nil {
			return nil, errors.Wrap(err, "invalid --encoding")
		}
		if e.encoding, err = locale.ForCodePage(cp); err != nil {
			return nil, errors.Wrap(err, "invalid --encoding")
		}
	}
	log.Debugf("config loaded: compression=%s overrides=%d", cfg.Bundle.Compression, len(cfg.Encoding.Overrides))

	return e, nil
}

func envFrom(cmd *cobra.Command) *env {
	e, ok := cmd.Context().Value(envKey{}).(*env)
	if !ok {
		// Commands run without the root pre-run (tests) get defaults.
		return &env{cfg: config.DefaultConfig(), log: logrus.New()}
	}

	return e
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().StringP("encoding", "e", "", "Code page for every file, by name or number (e.g. euc-kr, 932)")
}
