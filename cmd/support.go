package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var supportCmd = &cobra.Command{
	Use:   "support",
	Short: "Process a sample ticket queue with the configured ordering",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		cs, err := svc.NewSupport()
		if err != nil {
			return err
		}
		cs.CreateTicket("Zack Ali", "My computer makes strange sounds!")
		cs.CreateTicket("Linus Sebastian", "I can't upload any videos, please help.")
		cs.CreateTicket("John Smith", "VSCode doesn't automatically solve my bugs.")
		processed, err := cs.ProcessTickets()
		if err != nil {
			return err
		}
		for _, t := range processed {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", t.ID, t.Customer, t.Issue)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(supportCmd)
}
