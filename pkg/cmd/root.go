package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siyuan-infoblox/py-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-group/pkg/processor"
	"github.com/siyuan-infoblox/py-imports-group/pkg/settings"
	"github.com/siyuan-infoblox/py-imports-group/pkg/version"
)

const (
	UseDescription   = "pig [flags] PATH"
	ShortDescription = "Python imports grouper - A tool to group and sort Python imports"
	LongDescription  = `pig is a command-line tool that groups and sorts Python imports.

It classifies every import into a named section (future, standard library,
third-party, first-party, local folder, or a user-defined section), orders
the sections and the imports within them, and rewrites the import block in
a canonical form.

Classification, ordering and rendering are driven by a YAML configuration
file (` + settings.DefaultConfigFile + ` by default): known-first-party /
known-third-party / known-local-folder pattern lists, custom sections,
section order, forced-separate blocks, blank-line policy and more.

PATH can be either a single Python file or a directory. When a directory is
specified, all Python source files in the directory and subdirectories will
be processed recursively.`
)

var (
	configPath  string
	inPlace     bool
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML configuration file (default "+settings.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolVar(&inPlace, "in-place", false, "Modify the file in place instead of printing to stdout")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		info := version.Get()
		if versionStr != "" {
			info.Version = versionStr
		}
		fmt.Println(info)
		return nil
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is harmless

	opts, err := loadOptions(log)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	resolved, warnings, err := settings.Resolve(opts)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToResolveConfig, err)
	}

	// Warnings are surfaced once per distinct message.
	seen := make(map[string]struct{}, len(warnings))
	for _, warning := range warnings {
		msg := warning.Message()
		if _, dup := seen[msg]; dup {
			continue
		}
		seen[msg] = struct{}{}
		log.Warn(msg)
	}

	p := processor.New(resolved, processor.Config{InPlace: inPlace}, log)
	return p.ProcessPath(args[0])
}

// loadOptions reads the configured YAML file; without --config the default
// file is used when present, otherwise defaults apply.
func loadOptions(log *zap.Logger) (settings.Options, error) {
	path := configPath
	if path == "" {
		if _, err := os.Stat(settings.DefaultConfigFile); err != nil {
			return settings.Options{}, nil
		}
		path = settings.DefaultConfigFile
	}
	log.Debug("loading configuration", zap.String("path", path))
	return settings.LoadOptions(path)
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
