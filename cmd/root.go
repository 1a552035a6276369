package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Ham-Taro-code/TextMeld/pkg/clipboard"
	"github.com/Ham-Taro-code/TextMeld/pkg/meld"
	"github.com/Ham-Taro-code/TextMeld/pkg/tokens"
)

var rootLogger *zap.Logger

// RootCmd is the base command. Invoked with a directory it produces the
// combined tree-plus-content artifact for that directory.
var RootCmd = &cobra.Command{
	Use:   "textmeld <directory>",
	Short: "TextMeld concatenates a directory tree into a single text file",
	Long: `TextMeld renders a directory tree and merges the contents of its text
files into one artifact, ready to paste into an LLM prompt. Entries matching
exclusion patterns, or patterns listed in the directory's .gitignore, are
left out of both the tree and the merged content.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		runArgs := meld.Arguments{
			Directory:       args[0],
			Output:          viper.GetString("output"),
			ExcludePatterns: viper.GetStringSlice("exclude"),
			CopyToClipboard: viper.GetBool("copy"),
			CountTokens:     viper.GetBool("tokens"),
		}

		var counter meld.TokenCounter
		if runArgs.CountTokens {
			c, err := tokens.NewCounter("")
			if err != nil {
				rootLogger.Warn("Token counter unavailable", zap.Error(err))
			} else {
				counter = c
			}
		}

		return meld.Run(runArgs, clipboard.NewService(), counter, rootLogger)
	},
}

// Execute wires the logger into the command tree and runs it.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.Flags().StringP("output", "o", "", "write the artifact to a file instead of stdout")
	RootCmd.Flags().StringArrayP("exclude", "e", nil, "additional exclusion pattern (repeatable)")
	RootCmd.Flags().Bool("copy", false, "also copy the artifact to the system clipboard")
	RootCmd.Flags().Bool("tokens", false, "report an estimated token count of the artifact")
	RootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	_ = viper.BindPFlag("output", RootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("exclude", RootCmd.Flags().Lookup("exclude"))
	_ = viper.BindPFlag("copy", RootCmd.Flags().Lookup("copy"))
	_ = viper.BindPFlag("tokens", RootCmd.Flags().Lookup("tokens"))
}

// initConfig layers an optional .textmeld.yaml from the working directory or
// the home directory under the flag values, with TEXTMELD_* environment
// variables in between. A missing config file is not an error.
func initConfig() {
	viper.SetConfigName(".textmeld")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("TEXTMELD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && rootLogger != nil {
			rootLogger.Warn("Failed to read config file", zap.Error(err))
		}
	}
}
