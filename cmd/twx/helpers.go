package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/twxdev/twx"
	"github.com/twxdev/twx/twxconfig"
)

func loadDotenvBestEffort() {
	// Best effort: load from current working directory.
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.twx")
}

func mustResolve() (*twx.Client, *twxconfig.Selection) {
	cfg, err := twxconfig.LoadGlobal()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to read config:", err)
		os.Exit(2)
	}
	sel, err := twxconfig.Resolve(cfg, twxconfig.ResolveOptions{
		AccountName:       accountFlag,
		AllowEnvOverrides: true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	c, err := twx.NewWithBearerToken(sel.BaseURL, sel.BearerToken,
		twx.WithTimeout(sel.Timeout),
		twx.WithRetry(sel.MaxRetries, 0),
		twx.WithRateLimit(sel.RatePerMinute),
		twx.WithLogger(newLogger()),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid base URL:", err)
		os.Exit(2)
	}
	return c, sel
}

func mustClient() *twx.Client {
	c, _ := mustResolve()
	return c
}

func mustDefaultGlobalPath() string {
	path, err := twxconfig.DefaultGlobalConfigPath()
	if err != nil {
		fatal(err)
	}
	return path
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debugFlag {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printJSON(v any) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

func debugLog(format string, args ...any) {
	if debugFlag {
		fmt.Fprintf(os.Stderr, "[debug] "+format+"\n", args...)
	}
}
