package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/hashdo/internal/version"
	"github.com/arthur-debert/hashdo/pkg/commands"
)

func newCountCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "count [filter]",
		Short: MsgCountShort,
		Long:  MsgCountLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.registryOptions()
			if err != nil {
				return err
			}

			result, err := commands.CountCards(commands.CountCardsOptions{
				RegistryOptions: opts,
				Filter:          firstArg(args),
			})
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), result)
		},
	}
}

func newListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list [filter]",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.registryOptions()
			if err != nil {
				return err
			}

			result, err := commands.ListCards(commands.ListCardsOptions{
				RegistryOptions: opts,
				Filter:          firstArg(args),
			})
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), result)
		},
	}
}

func newShowCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "show <pack> <card>",
		Short:             MsgShowShort,
		Long:              MsgShowLong,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: cardKeysCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.registryOptions()
			if err != nil {
				return err
			}

			card, err := commands.ShowCard(commands.ShowCardOptions{
				RegistryOptions: opts,
				Pack:            args[0],
				Card:            args[1],
			})
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), card)
		},
	}
}

func newPacksCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "packs",
		Short: MsgPacksShort,
		Long:  MsgPacksLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.registryOptions()
			if err != nil {
				return err
			}

			result, err := commands.ListPacks(commands.ListPacksOptions{RegistryOptions: opts})
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), result)
		},
	}
}

func newVersionCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.render(cmd.OutOrStdout(), version.Get())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// cardKeysCompletion completes pack keys for the first argument and the
// card keys of that pack for the second
func cardKeysCompletion(flags *globalFlags) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= 2 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		opts, err := flags.registryOptions()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		list, err := commands.ListCards(commands.ListCardsOptions{RegistryOptions: opts})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		seen := map[string]bool{}
		var keys []string
		for _, card := range list.Cards {
			key := card.Pack
			if len(args) == 1 {
				if card.Pack != args[0] {
					continue
				}
				key = card.Card
			}
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		return keys, cobra.ShellCompDirectiveNoFileComp
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
