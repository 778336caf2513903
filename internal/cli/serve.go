package cli

import (
	"github.com/spf13/cobra"
	"github.com/vitacart/storefront/internal/storefront/app"
)

func newServeCmd() *cobra.Command {
	var (
		flagPort     int
		flagPagesDir string
		flagDBFile   string
		flagAPIBase  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront gateway server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()

			// Flags win over environment.
			if cmd.Flags().Changed("port") {
				cfg.Port = flagPort
			}
			if cmd.Flags().Changed("pages-dir") {
				cfg.PagesDir = flagPagesDir
			}
			if cmd.Flags().Changed("db") {
				cfg.DatabaseFile = flagDBFile
			}
			if cmd.Flags().Changed("shop-api") {
				cfg.ShopAPIBaseURL = flagAPIBase
			}

			application, err := app.New(cfg)
			if err != nil {
				return err
			}

			return application.Run()
		},
	}

	cmd.Flags().IntVar(&flagPort, "port", 8080, "HTTP server port (or PORT env)")
	cmd.Flags().StringVar(&flagPagesDir, "pages-dir", "pages", "Static page directory (or STOREFRONT_PAGES_DIR env)")
	cmd.Flags().StringVar(&flagDBFile, "db", "storefront.db", "Session database file (or STOREFRONT_DATABASE_FILE env)")
	cmd.Flags().StringVar(&flagAPIBase, "shop-api", "", "Shop backend base URL (or SHOP_API_BASE_URL env)")

	return cmd
}
