package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/roster-go/internal/config"
	"github.com/quantmind-br/roster-go/internal/git"
	"github.com/quantmind-br/roster-go/internal/manifest"
	"github.com/quantmind-br/roster-go/internal/utils"
	"github.com/quantmind-br/roster-go/pkg/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// cli holds the state shared by the command tree
type cli struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	dryRun  bool
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Regenerate the student manifest",
		Long: `Roster rebuilds data/students/index.json, the JSON array of student
data files that the roster site loads.

Every *.json file in the student directory is listed in sorted order,
except the manifest itself. Relative directories are resolved against
the root of the enclosing git repository.`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runUpdate,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is ./roster.yaml or ~/.roster/roster.yaml)")
	flags.StringP("dir", "d", config.DefaultStudentsDir, "Student directory, relative to the project root")
	flags.String("manifest", config.DefaultManifestName, "Manifest file name inside the student directory")
	flags.String("pattern", config.DefaultPattern, "Glob selecting student files")
	flags.String("log-format", config.DefaultLogFormat, "Log format (pretty or json)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.Flags().BoolVar(&c.dryRun, "dry-run", false, "Print the manifest instead of writing it")

	// Bind flags to viper
	_ = c.v.BindPFlag("students.directory", flags.Lookup("dir"))
	_ = c.v.BindPFlag("students.manifest", flags.Lookup("manifest"))
	_ = c.v.BindPFlag("students.pattern", flags.Lookup("pattern"))
	_ = c.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig reads the configuration and builds the logger for a command
func (c *cli) loadConfig(cmd *cobra.Command) (*config.Config, *utils.Logger, error) {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	}

	cfg, err := config.LoadFrom(c.v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: c.verbose,
	})
	if used := c.v.ConfigFileUsed(); used != "" {
		logger.Debug().Str("file", used).Msg("Loaded config file")
	}

	return cfg, logger, nil
}

// prepare resolves the student directory and builds a generator
func (c *cli) prepare(cmd *cobra.Command, dryRun bool) (*manifest.Generator, string, error) {
	cfg, logger, err := c.loadConfig(cmd)
	if err != nil {
		return nil, "", err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}

	dir, err := git.NewRootLocator(nil, logger).Resolve(wd, cfg.Students.Directory)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve student directory: %w", err)
	}

	gen := manifest.NewGenerator(manifest.Options{
		ManifestName: cfg.Students.Manifest,
		Pattern:      cfg.Students.Pattern,
		DryRun:       dryRun,
		Logger:       logger,
	})
	return gen, dir, nil
}

func (c *cli) runUpdate(cmd *cobra.Command, args []string) error {
	gen, dir, err := c.prepare(cmd, c.dryRun)
	if err != nil {
		return err
	}

	result, err := gen.Generate(cmd.Context(), dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if c.dryRun {
		_, err := out.Write(result.Data)
		return err
	}

	fmt.Fprintf(out, "Updated manifest with %d student file(s).\n", result.Count())
	return nil
}

func (c *cli) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the manifest matches the student directory",
		Long: `Check rebuilds the manifest in memory and compares it byte for byte
with the file on disk. It exits non-zero when the manifest is missing
or out of date, which makes it suitable for CI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, dir, err := c.prepare(cmd, true)
			if err != nil {
				return err
			}

			result, err := gen.Check(cmd.Context(), dir)
			if errors.Is(err, manifest.ErrManifestStale) {
				errOut := cmd.ErrOrStderr()
				for _, name := range result.Added {
					fmt.Fprintf(errOut, "  + %s\n", name)
				}
				for _, name := range result.Removed {
					fmt.Fprintf(errOut, "  - %s\n", name)
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Manifest is up to date (%d student file(s)).\n", result.Count())
			return nil
		},
	}
}

func (c *cli) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
