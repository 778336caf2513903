package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command for the storefront gateway.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "storefront",
		Short:        "VitaCart storefront gateway",
		Long:         "Serves the VitaCart storefront pages and guards restricted routes against the shop backend.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}
