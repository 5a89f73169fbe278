package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-tablelayout/internal/config"
	"github.com/grindlemire/go-tablelayout/internal/debug"
	"github.com/grindlemire/go-tablelayout/internal/layout"
)

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"log.level":      "log-level",
	"solve.width":    "width",
	"solve.height":   "height",
	"solve.strict":   "strict",
	"solve.workers":  "workers",
	"output.format":  "format",
	"preview.border": "border",
	"preview.scale":  "scale",
}

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	closeFn func() error
}

// run executes the CLI with args and releases the logger afterwards.
func run(args []string, out, errOut io.Writer) error {
	a := &app{log: zap.NewNop()}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.Execute()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tablelayout",
		Short:         "Solve and preview constraint-based table layouts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate("tablelayout {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./tablelayout.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newSolveCmd(a),
		newPreviewCmd(a),
		newRenderCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration for cmd and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	v := config.NewViper(a.cfgFile)
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, closeFn, err := debug.New(cfg.Log, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.log, a.closeFn = log, closeFn
	layout.SetLogger(log.Named("layout"))

	a.log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", v.ConfigFileUsed()))
	return nil
}

// bindFlags lets the flags present in fs override their config keys.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) close() {
	layout.SetLogger(nil)
	if a.closeFn != nil {
		_ = a.closeFn()
	}
}

// addTargetFlags registers the target-area overrides shared by subcommands.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().Float32("width", 0, "target width (default from the document)")
	cmd.Flags().Float32("height", 0, "target height (default from the document)")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tablelayout %s\n", version)
		},
	}
}
