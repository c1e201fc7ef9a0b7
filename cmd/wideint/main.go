// Command wideint evaluates fixed-width integer expressions and computes MiMC7 hashes.
//
// Usage:
//
//	wideint calc 503 '<<' 6
//	wideint --type int256 calc 202 - 243
//	wideint calc 10 exp 5 --mod 17
//	wideint hash --text abc
//	wideint hash file.bin
//	wideint constants
//
// Flags may also be set with WIDEINT_ prefixed environment variables
// (e.g. WIDEINT_OUTPUT_FORMAT=hex) or a configuration file given by --config.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "WIDEINT"

// Configuration keys.
const (
	keyLogLevel = "log.level"
	keyFormat   = "output.format"
	keyType     = "type"
)

type app struct {
	v   *viper.Viper
	log *zap.Logger
	out io.Writer
	in  io.Reader
}

func main() {
	a := &app{in: os.Stdin, out: os.Stdout}

	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if a.command().Execute() != nil {
		os.Exit(1)
	}
}

func (a *app) command() *cobra.Command {
	a.v = viper.New()
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	var configFile string

	cmd := &cobra.Command{
		Use:          "wideint",
		Short:        "Fixed-width integer calculator and MiMC7 hash",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				a.v.SetConfigFile(configFile)
				if err := a.v.ReadInConfig(); err != nil {
					return errors.Wrapf(err, "failed to read config %s", configFile)
				}
			}
			lvl, err := zapcore.ParseLevel(a.v.GetString(keyLogLevel))
			if err != nil {
				return errors.Wrapf(err, "invalid %s", keyLogLevel)
			}
			if a.log == nil {
				if a.log, err = newLogger(lvl); err != nil {
					return err
				}
			}
			a.log.Debug("Running command", zap.String("command", cmd.CommandPath()), zap.String("config", a.v.ConfigFileUsed()))
			return nil
		},
	}
	cmd.SetOut(a.out)
	cmd.SetIn(a.in)

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "configuration file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("format", "dec", "output format (dec, hex)")
	flags.String("type", "uint256", "integer type (uint256, int256, uint512, int512)")

	bindFlags(a.v, flags, map[string]string{
		keyLogLevel: "log-level",
		keyFormat:   "format",
		keyType:     "type",
	})

	cmd.AddCommand(a.calcCommand())
	cmd.AddCommand(a.hashCommand())
	cmd.AddCommand(a.constantsCommand())

	return cmd
}

// bindFlags binds configuration keys to the named flags.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func newLogger(lvl zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	return cfg.Build()
}

// format returns the configured output format.
func (a *app) format() (string, error) {
	f := a.v.GetString(keyFormat)
	switch f {
	case "dec", "hex":
		return f, nil
	default:
		return "", errors.Errorf("invalid %s %q", keyFormat, f)
	}
}

func (a *app) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
