package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifeboard/internal/gamify"
	"lifeboard/internal/store"
	"lifeboard/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Spend XP on rewards",
	}
	cmd.AddCommand(newShopListCmd(), newShopBuyCmd())
	return cmd
}

func newShopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the catalog",
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
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop"))
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Gold.Render(fmt.Sprintf("%d XP", st.Profile.XP))))
			for _, item := range gamify.ShopCatalog() {
				tag := ui.Gold.Render(fmt.Sprintf("%d XP", item.Price))
				if store.Owned(st.Profile, item.ID) {
					tag = ui.Muted.Render("owned")
				}
				fmt.Fprintf(out, "- %s %s %s %s\n", item.Icon, item.Name, tag, ui.Muted.Render("["+item.ID+"]"))
			}
			return nil
		},
	}
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy an item",
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
			if err := s.BuyItem(ctx, args[0]); err != nil {
				return err
			}
			st := s.GetState()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconShop+" Bought!"),
				ui.Muted.Render(fmt.Sprintf("balance %d XP", st.Profile.XP)))
			return nil
		},
	}
}
