package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagBindings maps config keys to the persistent flag names that may
// override them. Flags missing from the command are skipped.
var flagBindings = map[string]string{
	KeyBaseURL:         "openai-base-url",
	KeyModel:           "model",
	KeyReasoningEffort: "reasoning-effort",
	KeySearchContext:   "search-context-size",
	KeyMaxRetries:      "max-retries",
	KeyRetryBaseDelay:  "retry-base-delay-ms",
	KeyCallTimeout:     "llm-call-timeout",
	KeyLogLevel:        "log-level",
}

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		flags := root.PersistentFlags()
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				_ = viper.BindPFlag(key, f)
			}
		}
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyBaseURL, "https://api.openai.com/v1")
	viper.SetDefault(KeyModel, "gpt-5")
	viper.SetDefault(KeyReasoningEffort, "medium")
	viper.SetDefault(KeySearchContext, "medium")
	viper.SetDefault(KeyMaxRetries, 2)
	viper.SetDefault(KeyRetryBaseDelay, 300)
	viper.SetDefault(KeyCallTimeout, "120s")
	viper.SetDefault(KeyLogLevel, "info")
}

func APIKey() string            { return viper.GetString(KeyAPIKey) }
func BaseURL() string           { return viper.GetString(KeyBaseURL) }
func Model() string             { return viper.GetString(KeyModel) }
func ReasoningEffort() string   { return viper.GetString(KeyReasoningEffort) }
func SearchContextSize() string { return viper.GetString(KeySearchContext) }
func MaxRetries() int           { return viper.GetInt(KeyMaxRetries) }
func LogLevel() string          { return viper.GetString(KeyLogLevel) }

func CallTimeout() time.Duration { return viper.GetDuration(KeyCallTimeout) }

func RetryBaseDelay() time.Duration {
	return time.Duration(viper.GetInt(KeyRetryBaseDelay)) * time.Millisecond
}
