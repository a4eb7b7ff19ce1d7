package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const maxSize = 4096

type Config struct {
	out     string
	size    int
	verbose bool
}

func (c *Config) validate() error {
	if c.out == "" {
		return errors.New("--out must not be empty")
	}
	if c.size < 64 || c.size > maxSize {
		return fmt.Errorf("invalid size (must be between 64-%d inclusive): %d", maxSize, c.size)
	}
	return nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FLOWQUEST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "tiles",
		Short:   "Prints the QR codes of every board tile as PNG files.",
		Args:    cobra.ExactArgs(0),
		Version: releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return printBoard(cmd, cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.out, "out", "o", "./board-tiles", "directory to write the images to (env: FLOWQUEST_OUT)")
	fs.IntVarP(&cfg.size, "size", "s", 500, "image side in pixels (env: FLOWQUEST_SIZE)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "list every written file (env: FLOWQUEST_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("tiles v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
