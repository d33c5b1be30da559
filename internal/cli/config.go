package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/export"
)

// Config holds the user defaults for the export command. Flags override it.
type Config struct {
	FontSize  float64   `toml:"font_size,omitempty"`
	LineWidth []float64 `toml:"line_width,omitempty"`
	PaperSize []float64 `toml:"paper_size,omitempty"`
	MarkupExt string    `toml:"markup_ext"`
	Policy    string    `toml:"policy"`
	Verify    bool      `toml:"verify"`
}

// defaultConfig is the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		MarkupExt: export.DefaultMarkupExt,
		Policy:    string(export.DefaultPolicy),
	}
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidFormat, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// writeConfig encodes cfg to path, creating its directory.
func writeConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "create %s", filepath.Dir(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "create %s", path)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeFileWrite, err, "write %s", path)
	}
	return f.Close()
}

// configCommand creates the config command and its subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the configuration file",
	}
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			p := printer{w: cmd.OutOrStdout()}
			p.keyValue("file", path)
			p.keyValue("font_size", fmt.Sprint(cfg.FontSize))
			p.keyValue("line_width", fmt.Sprint(cfg.LineWidth))
			p.keyValue("paper_size", fmt.Sprint(cfg.PaperSize))
			p.keyValue("markup_ext", cfg.MarkupExt)
			p.keyValue("policy", cfg.Policy)
			p.keyValue("verify", fmt.Sprint(cfg.Verify))
			return nil
		},
	}
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeFileExists, "%s already exists (use --force to overwrite)", path)
			}
			if err := writeConfig(path, defaultConfig()); err != nil {
				return err
			}
			printer{w: cmd.OutOrStdout()}.success("Wrote %s", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
