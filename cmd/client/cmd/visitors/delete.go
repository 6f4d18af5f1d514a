package visitors

import (
	"fmt"
	"strconv"

	"ciao/internal/app/client"
	"ciao/internal/i18n"

	"github.com/spf13/cobra"
)

var (
	deleteYes bool
	clearYes  bool
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [index]",
	Short: "Удалить запись посетителя",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("неверный индекс записи: %w", err)
		}

		ok, err := app.Prompt(i18n.DeleteEntry, deleteYes).Confirm(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(app.Out(), app.Catalog.T(i18n.Cancelled))
			return nil
		}

		rec, err := app.Visitors.Delete(cmd.Context(), index)
		if err != nil {
			return err
		}
		fmt.Fprintf(app.Out(), "%s: %s\n", app.Catalog.T(i18n.Success), rec.FullName())
		return nil
	},
}

var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Удалить все записи",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		ok, err := app.Prompt(i18n.DeleteEntries, clearYes).Confirm(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(app.Out(), app.Catalog.T(i18n.Cancelled))
			return nil
		}

		if err := app.Visitors.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(app.Out(), app.Catalog.T(i18n.Success))
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "не спрашивать подтверждение")
	ClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "не спрашивать подтверждение")
}
