// internal/cli/show_config.go
package fraudlens

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/fraudlens/internal/appconfig"
)

// showConfigCmd implements 'show config', which prints the merged
// configuration (flags over config file over defaults).
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags and FRAUDLENS_* environment variables accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
