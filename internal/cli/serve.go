// internal/cli/serve.go
package fraudlens

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/fraudlens/internal/server"
)

// serveCmd implements 'serve', which starts the web dashboard and runs until
// interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web dashboard",
	Long:  `The 'serve' command starts the HTTP dashboard with the selectors, the interactive charts, the JSON API and the PNG/XLSX downloads.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(server.Config{
			Addr:         cfg.ListenAddr(),
			ReadTimeout:  cfg.ReadTimeoutDuration(),
			WriteTimeout: cfg.WriteTimeoutDuration(),
			ChartHeight:  cfg.ChartHeightPx(),
			AssetsHost:   cfg.AssetsHost,
		})
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}
