package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/twxdev/twx/twxconfig"
)

var configTokenFlag string
var configBaseURLFlag string
var configScreenNameFlag string
var configDefaultFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage accounts in config.yaml",
}

var configAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or replace an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("account name must not be empty")
		}
		if strings.TrimSpace(configTokenFlag) == "" {
			return fmt.Errorf("--token is required")
		}
		path := mustDefaultGlobalPath()
		debugLog("config path: %s", path)
		return twxconfig.UpdateGlobalAt(path, func(cfg *twxconfig.GlobalConfig) error {
			cfg.Accounts[name] = twxconfig.Account{
				BaseURL:     strings.TrimSpace(configBaseURLFlag),
				BearerToken: strings.TrimSpace(configTokenFlag),
				ScreenName:  strings.TrimSpace(configScreenNameFlag),
			}
			if configDefaultFlag || cfg.DefaultAccount == "" {
				cfg.DefaultAccount = name
			}
			return nil
		})
	},
}

var configUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the default account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return twxconfig.UpdateGlobalAt(mustDefaultGlobalPath(), func(cfg *twxconfig.GlobalConfig) error {
			if _, ok := cfg.Accounts[args[0]]; !ok {
				return fmt.Errorf("unknown account %q", args[0])
			}
			cfg.DefaultAccount = args[0]
			return nil
		})
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print configured accounts with tokens masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := twxconfig.LoadGlobalFrom(mustDefaultGlobalPath())
		if err != nil {
			return err
		}
		names := make([]string, 0, len(cfg.Accounts))
		for name := range cfg.Accounts {
			names = append(names, name)
		}
		sort.Strings(names)

		type accountView struct {
			Name        string `json:"name"`
			BaseURL     string `json:"base_url,omitempty"`
			ScreenName  string `json:"screen_name,omitempty"`
			BearerToken string `json:"bearer_token"`
			Default     bool   `json:"default"`
		}
		out := make([]accountView, 0, len(names))
		for _, name := range names {
			acct := cfg.Accounts[name]
			out = append(out, accountView{
				Name:        name,
				BaseURL:     acct.BaseURL,
				ScreenName:  acct.ScreenName,
				BearerToken: maskToken(acct.BearerToken),
				Default:     name == cfg.DefaultAccount,
			})
		}
		printJSON(map[string]any{"accounts": out})
		return nil
	},
}

// maskToken keeps the last four characters of a token.
func maskToken(tok string) string {
	if len(tok) <= 4 {
		return strings.Repeat("*", len(tok))
	}
	return strings.Repeat("*", len(tok)-4) + tok[len(tok)-4:]
}

func init() {
	configAddCmd.Flags().StringVar(&configTokenFlag, "token", "", "OAuth2 bearer token")
	configAddCmd.Flags().StringVar(&configBaseURLFlag, "base-url", "", "API base URL (default https://api.twitter.com/1.1/)")
	configAddCmd.Flags().StringVar(&configScreenNameFlag, "screen-name", "", "Screen name the token belongs to")
	configAddCmd.Flags().BoolVar(&configDefaultFlag, "default", false, "Make this the default account")

	configCmd.AddCommand(configAddCmd)
	configCmd.AddCommand(configUseCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
