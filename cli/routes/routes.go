package routes

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sprintertech/bridge-orchestrator/app"
)

var (
	RoutesCLI = &cobra.Command{
		Use:   "routes",
		Short: "Compare available bridge routes",
		Long: "CLI calculates every route between the chains for the token amount " +
			"from the configured protocols and prints them ranked against the optimal, fastest and cheapest route",
		RunE: compareRoutes,
	}
)

var (
	from   string
	to     string
	token  string
	amount string
)

func init() {
	RoutesCLI.PersistentFlags().StringVar(&from, "from", "", "source chain id or name")
	_ = RoutesCLI.MarkFlagRequired("from")
	RoutesCLI.PersistentFlags().StringVar(&to, "to", "", "destination chain id or name")
	_ = RoutesCLI.MarkFlagRequired("to")
	RoutesCLI.PersistentFlags().StringVar(&token, "token", "", "token symbol")
	_ = RoutesCLI.MarkFlagRequired("token")
	RoutesCLI.PersistentFlags().StringVar(&amount, "amount", "", "amount in token base units")
	_ = RoutesCLI.MarkFlagRequired("amount")
}

func compareRoutes(cmd *cobra.Command, args []string) error {
	return app.PrintRoutes(cmd.Context(), os.Stdout, from, to, token, amount)
}
