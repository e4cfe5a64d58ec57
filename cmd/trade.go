package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Run the configured trading bot once on the simulated exchange",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		action, err := svc.Trade()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(action))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tradeCmd)
}
