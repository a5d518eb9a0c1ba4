package main

import (
	"github.com/spf13/cobra"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/display"
	"github.com/aristath/advisor/internal/utils"
)

func newCalculateCmd(app *App) *cobra.Command {
	var (
		ticker string
		params domain.TradeParameters
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Print the profit report for a round-trip trade",
		Example: `  advisor calculate --ticker AAPL --shares 10 --buy-price 131 --sell-price 150
  advisor calculate --shares 100 --buy-price 10 --sell-price 12 --buy-commission 5 --sell-commission 5 --tax-rate 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Container.Calculator.Evaluate(params)
			if err != nil {
				return err
			}
			return display.WriteProfitReport(cmd.OutOrStdout(), utils.NormalizeTicker(ticker), params, result, app.Config.Currency)
		},
	}

	cmd.Flags().StringVarP(&ticker, "ticker", "t", "", "Ticker shown in the report header")
	cmd.Flags().IntVar(&params.Shares, "shares", 0, "Number of shares")
	cmd.Flags().Float64Var(&params.BuyPrice, "buy-price", 0, "Price paid per share")
	cmd.Flags().Float64Var(&params.SellPrice, "sell-price", 0, "Price received per share")
	cmd.Flags().Float64Var(&params.BuyCommission, "buy-commission", 0, "Flat commission on the buy")
	cmd.Flags().Float64Var(&params.SellCommission, "sell-commission", 0, "Flat commission on the sell")
	cmd.Flags().Float64Var(&params.TaxRatePct, "tax-rate", 0, "Capital gains tax rate in percent")
	_ = cmd.MarkFlagRequired("shares")
	_ = cmd.MarkFlagRequired("buy-price")
	_ = cmd.MarkFlagRequired("sell-price")

	return cmd
}
