package twxconfig

import (
	"fmt"
	"strings"
	"time"
)

// ResolveOptions controls account selection.
type ResolveOptions struct {
	// AccountName wins over TWX_ACCOUNT and the config default.
	AccountName string
	// AllowEnvOverrides applies Env on top of the selected account.
	AllowEnvOverrides bool
	// Env is used instead of the process environment when non-nil.
	Env *Env
}

// Selection is the resolved account plus transport settings.
type Selection struct {
	AccountName   string
	BaseURL       string
	BearerToken   string
	ScreenName    string
	Timeout       time.Duration
	MaxRetries    uint64
	RatePerMinute int
}

// Resolve picks an account from cfg. With env overrides allowed, a token in
// TWX_BEARER_TOKEN is enough even when no account is configured.
func Resolve(cfg *GlobalConfig, opts ResolveOptions) (*Selection, error) {
	var e Env
	if opts.AllowEnvOverrides {
		if opts.Env != nil {
			e = *opts.Env
		} else {
			loaded, err := LoadEnv()
			if err != nil {
				return nil, fmt.Errorf("parse environment: %w", err)
			}
			e = loaded
		}
	}

	name := strings.TrimSpace(opts.AccountName)
	if name == "" {
		name = strings.TrimSpace(e.Account)
	}
	if name == "" && cfg != nil {
		name = strings.TrimSpace(cfg.DefaultAccount)
	}

	sel := &Selection{
		AccountName:   name,
		Timeout:       e.Timeout,
		MaxRetries:    e.MaxRetries,
		RatePerMinute: e.RatePerMinute,
	}
	if name != "" {
		var acct Account
		var ok bool
		if cfg != nil {
			acct, ok = cfg.Accounts[name]
		}
		if !ok {
			return nil, fmt.Errorf("unknown account %q", name)
		}
		sel.BaseURL = acct.BaseURL
		sel.BearerToken = acct.BearerToken
		sel.ScreenName = acct.ScreenName
	}

	if v := strings.TrimSpace(e.BaseURL); v != "" {
		sel.BaseURL = v
	}
	if v := strings.TrimSpace(e.BearerToken); v != "" {
		sel.BearerToken = v
	}
	if sel.BearerToken == "" {
		return nil, fmt.Errorf("no account selected (pass --account, set TWX_ACCOUNT or TWX_BEARER_TOKEN, or run `twx config add`)")
	}
	return sel, nil
}
