// Package cli wires the hashdo commands into a cobra command tree
package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	helptopics "github.com/arthur-debert/hashdo/internal/cli/topics"
	"github.com/arthur-debert/hashdo/internal/version"
	"github.com/arthur-debert/hashdo/pkg/cobrax/topics"
	"github.com/arthur-debert/hashdo/pkg/commands"
	"github.com/arthur-debert/hashdo/pkg/config"
	"github.com/arthur-debert/hashdo/pkg/logging"
	"github.com/arthur-debert/hashdo/pkg/ui"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity  int
	configFile string
	cardsDir   string
	baseURL    string
	format     ui.Format
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "hashdo",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&flags.configFile, "config", "c", "", MsgFlagConfig)
	pf.StringVarP(&flags.cardsDir, "cards-dir", "d", "", MsgFlagCardsDir)
	pf.StringVar(&flags.baseURL, "base-url", "", MsgFlagBaseURL)
	pf.VarP(&flags.format, "format", "f", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCountCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newShowCmd(flags))
	rootCmd.AddCommand(newPacksCmd(flags))
	rootCmd.AddCommand(newVersionCmd(flags))
	rootCmd.AddCommand(newCompletionCmd())

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if isTerminal() {
		renderer = topics.NewGlamourRenderer()
	}
	err := topics.InitializeWithOptions(rootCmd, helptopics.FS, topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// ReportError renders err on the command's error stream using the format
// selected by --format. Auto-detection is skipped: errors are plain text
// unless another format was asked for.
func ReportError(cmd *cobra.Command, err error) {
	format := ui.FormatText
	if flag := cmd.Root().PersistentFlags().Lookup("format"); flag != nil {
		if selected, ok := flag.Value.(*ui.Format); ok && *selected != ui.FormatAuto {
			format = *selected
		}
	}

	renderer, rerr := ui.NewRenderer(format, cmd.ErrOrStderr())
	if rerr != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
		return
	}
	_ = renderer.RenderError(err)
}

// loadConfig layers the global flags over defaults, config file and env
func (f *globalFlags) loadConfig() (*config.Config, error) {
	overrides := map[string]interface{}{}
	if f.cardsDir != "" {
		overrides["cards_dir"] = f.cardsDir
	}
	if f.baseURL != "" {
		overrides["base_url"] = f.baseURL
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: f.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// registryOptions loads the configuration for a registry-backed command
func (f *globalFlags) registryOptions() (commands.RegistryOptions, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return commands.RegistryOptions{}, err
	}
	return commands.RegistryOptions{Config: cfg}, nil
}

// render writes result to the command's output in the selected format
func (f *globalFlags) render(out io.Writer, result interface{}) error {
	return ui.Render(f.format, out, result)
}
