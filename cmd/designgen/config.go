package main

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/designgen"
	"github.com/yacobolo/designgen/bridge"
	core "github.com/yacobolo/designgen/internal/designgen"
)

const (
	defaultConfigPath = ".designgen.yaml"
	envPrefix         = "DESIGNGEN_"
)

var k = koanf.New(".")

// configSections are the nested blocks of the config file
var configSections = []string{"generate", "check", "bridge"}

// flagKeys maps command-line flag names to config keys. Flags missing from
// the table use their own name.
var flagKeys = map[string]string{
	"input":           "generate.input",
	"output-dir":      "generate.output-dir",
	"idiom":           "generate.idiom",
	"types":           "generate.types",
	"children":        "generate.children",
	"tests":           "generate.tests",
	"stories":         "generate.stories",
	"package-name":    "generate.package-name",
	"package-version": "generate.package-version",
	"ignore-file":     "generate.ignore-file",
	"dry-run":         "generate.dry-run",
	"dir":             "check.dir",
	"output-format":   "check.output-format",
	"print-lines":     "check.print-lines",
	"print-check":     "check.print-check-name",
	"url":             "bridge.url",
	"transport":       "bridge.transport",
	"connect-timeout": "bridge.connect-timeout",
	"request-timeout": "bridge.request-timeout",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags the user actually set override file and env values
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return flagKey(f.Name), posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return errors.Wrap(err, "loading command flags")
	}

	return nil
}

// loadConfigFromPath loads the config file and environment variables.
// Separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return errors.Wrapf(err, "loading config file %s", configPath)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return errors.Wrap(err, "loading environment variables")
	}

	return nil
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// envKey maps environment variables to config keys:
//
//	DESIGNGEN_GENERATE_OUTPUT_DIR -> generate.output-dir
//	DESIGNGEN_BRIDGE_URL          -> bridge.url
//	DESIGNGEN_VERBOSE             -> verbose
func envKey(s string) string {
	name := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(name, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(name, "_", "-")
}

// buildGenerateConfig constructs the library's Config from koanf state
func buildGenerateConfig() designgen.Config {
	return designgen.Config{
		Inputs:         getStrings("generate.input", []string{"design/**/*.json"}),
		OutputDir:      getString("generate.output-dir", "ui"),
		Idiom:          getString("generate.idiom", string(core.IdiomScopedClass)),
		Types:          getBool("generate.types", true),
		Children:       getBool("generate.children", false),
		Tests:          getBool("generate.tests", true),
		Stories:        getBool("generate.stories", false),
		PackageName:    getString("generate.package-name", core.DefaultPackageName),
		PackageVersion: getString("generate.package-version", core.DefaultPackageVersion),
		IgnoreFile:     getString("generate.ignore-file", ".designgenignore"),
		DryRun:         getBool("generate.dry-run", false),
	}
}

// buildCheckConfig constructs the library's CheckConfig from koanf state.
// The project directory defaults to the generate output directory.
func buildCheckConfig() designgen.CheckConfig {
	return designgen.CheckConfig{
		Dir: getString("check.dir", getString("generate.output-dir", "ui")),
	}
}

func buildReporterConfig() core.ReporterConfig {
	return core.ReporterConfig{
		UseColors:      getBool("color", false),
		PrintLines:     getBool("check.print-lines", true),
		PrintCheckName: getBool("check.print-check-name", true),
	}
}

// buildBridgeOptions constructs bridge client options from koanf state
func buildBridgeOptions() (bridge.Options, error) {
	opts := bridge.Options{
		BaseURL:        getString("bridge.url", bridge.DefaultBaseURL),
		ConnectTimeout: getDuration("bridge.connect-timeout", bridge.DefaultConnectTimeout),
		RequestTimeout: getDuration("bridge.request-timeout", bridge.DefaultRequestTimeout),
	}

	switch transport := getString("bridge.transport", "sse"); transport {
	case "sse":
		opts.Sources = &bridge.SSESource{}
	case "websocket", "ws":
		opts.Sources = &bridge.WebSocketSource{}
		opts.EventsPath = "/ws"
	case "none":
		// Health endpoint only
	default:
		return opts, errors.WithHint(
			errors.Newf("unknown bridge transport %q", transport),
			"use sse, websocket or none",
		)
	}

	return opts, nil
}

func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if k.Exists(key) {
		if d := k.Duration(key); d > 0 {
			return d
		}
	}
	return defaultVal
}

// getStrings accepts a YAML list, a comma-separated string (env) or a
// repeated flag
func getStrings(key string, defaultVal []string) []string {
	if !k.Exists(key) {
		return defaultVal
	}
	raw := k.Strings(key)
	if len(raw) == 0 {
		raw = []string{k.String(key)}
	}
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
