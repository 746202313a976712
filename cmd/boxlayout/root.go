package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-boxlayout/internal/config"
	"github.com/grindlemire/go-boxlayout/internal/layout"
	"github.com/grindlemire/go-boxlayout/internal/tree"
	"github.com/grindlemire/go-boxlayout/pkg/debug"
)

// debugEnv names the variable that sends debug logging to a file.
const debugEnv = config.EnvPrefix + "_DEBUG"

// app is the state shared by every subcommand of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// flagKeys binds persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"log-level":       "logger.level",
	"log-format":      "logger.format",
	"log-file":        "logger.file",
	"viewport-width":  "viewport.width",
	"viewport-height": "viewport.height",
	"locale":          "layout.locale",
	"direction":       "layout.direction",
	"concurrency":     "layout.concurrency",
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:               "boxlayout",
		Short:             "Measure declarative box layout documents",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetVersionTemplate("boxlayout version {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: console or json")
	flags.String("log-file", "", "also write JSON logs to this rotated file")
	flags.Float64("viewport-width", 0, "viewport width for documents that declare none")
	flags.Float64("viewport-height", 0, "viewport height for documents that declare none")
	flags.String("locale", "", "BCP-47 locale for roots that declare none")
	flags.String("direction", "", "root direction: ltr, rtl, inherit or auto")
	flags.Int("concurrency", 0, "documents measured at once")
	for name, key := range flagKeys {
		// Lookup cannot fail for flags registered above.
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	cmd.AddCommand(newMeasureCmd(a), newCheckCmd(a), newHitCmd(a), newVersionCmd())
	return cmd
}

// setup loads the configuration and starts the logger before any subcommand
// runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if path := os.Getenv(debugEnv); path != "" {
		if err := debug.Init(path); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	debug.Initialize(cfg.Logger.Options(), zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
	debug.Logger().Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("file", a.v.ConfigFileUsed()),
		zap.Stringer("viewport", cfg.Viewport.Size()),
		zap.Int("concurrency", cfg.Layout.Concurrency))
	return nil
}

// environment turns the layout section of the configuration into the
// defaults documents are measured with.
func (a *app) environment() (tree.MeasureOptions, error) {
	locale, err := a.cfg.Layout.LocaleTag()
	if err != nil {
		return tree.MeasureOptions{}, err
	}
	dir, err := a.cfg.Layout.TextDirection()
	if err != nil {
		return tree.MeasureOptions{}, err
	}

	opts := tree.MeasureOptions{
		Viewport: a.cfg.Viewport.Size(),
		Locale:   locale,
		Logger:   debug.Logger(),
	}
	if dir == layout.DirectionLTR || dir == layout.DirectionRTL {
		opts.Direction = &dir
	}
	return opts, nil
}
