package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lifeboard/internal/insight"
	"lifeboard/internal/storage"
	"lifeboard/internal/ui"
)

func newMoneyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "money",
		Short: "Track income and expenses",
	}
	cmd.AddCommand(newMoneyAddCmd(), newMoneyListCmd(), newMoneyBalanceCmd(), newMoneyRmCmd())
	return cmd
}

func newMoneyAddCmd() *cobra.Command {
	var date string
	var label string
	var expense bool

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction (income by default, --expense for spend)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("amount is required")
			}
			if _, err := strconv.ParseFloat(args[0], 64); err != nil {
				return errors.New("amount must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _ := strconv.ParseFloat(args[0], 64)
			typ := storage.TxIncome
			if expense {
				typ = storage.TxExpense
			}
			ctx := context.Background()
			s, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUnlocked(s); err != nil {
				return err
			}
			tx, err := s.AddTransaction(ctx, date, amount, typ, label)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Recorded %s of %.2f on %s\n", ui.Good.Render(ui.IconMoney), tx.Type, tx.Amount, tx.Date)
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD), default today")
	cmd.Flags().StringVarP(&label, "label", "l", "", "Free-text label")
	cmd.Flags().BoolVarP(&expense, "expense", "e", false, "Record an expense")
	return cmd
}

func newMoneyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUnlocked(s); err != nil {
				return err
			}
			st := s.GetState()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMoney, "Ledger"))
			for _, tx := range st.Transactions {
				sign := "+"
				style := ui.Good
				if tx.Type == storage.TxExpense {
					sign = "-"
					style = ui.Bad
				}
				label := tx.Label
				if label != "" {
					label = " " + label
				}
				fmt.Fprintf(out, "%s %s%s %s\n", tx.Date, style.Render(fmt.Sprintf("%s%.2f", sign, tx.Amount)), label, ui.Muted.Render(tx.ID))
			}
			return nil
		},
	}
}

func newMoneyRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <transaction-id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUnlocked(s); err != nil {
				return err
			}
			if err := s.DeleteTransaction(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Deleted."))
			return nil
		},
	}
}

func newMoneyBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the all-time balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUnlocked(s); err != nil {
				return err
			}
			st := s.GetState()
			balance := insight.Balance(st.Transactions)
			style := ui.Good
			if balance < 0 {
				style = ui.Bad
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", style.Render(fmt.Sprintf("%.2f", balance))))
			return nil
		},
	}
}
