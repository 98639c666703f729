package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitConfig initializes viper configuration. An explicit config file must be
// readable; the default locations are optional.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home and working directory with name ".phonoprep" (without extension)
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".phonoprep")
	}

	// Environment variables, e.g. PHONOPREP_LOG_FORMAT for log.format
	viper.SetEnvPrefix("PHONOPREP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}
	return nil
}

func bindFlagsToViper(cmd *cobra.Command, bindings map[string]string) {
	for key, flag := range bindings {
		viper.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

// splitList splits a comma separated list and drops empty elements.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
