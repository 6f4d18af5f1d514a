package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"ciao/internal/app/client"
	"ciao/internal/config"
	"ciao/internal/domain/archive"
	"ciao/internal/i18n"

	"github.com/spf13/cobra"
)

var (
	createYes bool
	deleteYes bool
)

// ArchiveCmd - родительская команда для архива выгрузок
var ArchiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Архив выгрузок",
	Long:  `Архивирование текущего списка и работа с архивными CSV-файлами.`,
}

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Архивировать текущий список",
	Long: `Записывает текущий список в каталог архива и очищает его.
Для неэкспортированного списка нужно подтверждение (или --yes).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		f, err := app.Archives.Archive(cmd.Context(), app.ArchiveConfirmer(createYes))
		if errors.Is(err, archive.ErrCancelled) {
			fmt.Fprintln(app.Out(), app.Catalog.T(i18n.Cancelled))
			return nil
		}
		if err != nil {
			return err
		}

		if app.JSON {
			return json.NewEncoder(app.Out()).Encode(f)
		}
		fmt.Fprintf(app.Out(), "%s: %s\n", app.Catalog.T(i18n.Success), f.Name)
		return nil
	},
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список архивов",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		list, err := app.Archives.List(cmd.Context())
		if err != nil {
			return err
		}

		if app.JSON {
			encoder := json.NewEncoder(app.Out())
			encoder.SetIndent("", "  ")
			return encoder.Encode(list)
		}
		if len(list) == 0 {
			fmt.Fprintln(app.Out(), app.Catalog.T(i18n.NoArchivedEntriesYet))
			return nil
		}

		w := tabwriter.NewWriter(app.Out(), 0, 0, 2, ' ', 0)
		for _, f := range list {
			fmt.Fprintf(w, "%s\t%d B\t%s\t\n", f.Name, f.Size, app.Catalog.FormatMillis(f.Modified.UnixMilli()))
		}
		return w.Flush()
	},
}

var ShareCmd = &cobra.Command{
	Use:   "share [name]",
	Short: "Отправить архивный файл",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		sharer, err := app.Sharer()
		if err != nil {
			return err
		}
		location, err := app.Archives.Share(cmd.Context(), args[0], sharer)
		if err != nil {
			return err
		}
		if app.Config.Share.Target != config.ShareStdout {
			fmt.Fprintf(app.Out(), "%s: %s\n", app.Catalog.T(i18n.Success), location)
		}
		return nil
	},
}

var DeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Удалить архивный файл",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		ok, err := app.Prompt(i18n.DeleteBackup, deleteYes).Confirm(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(app.Out(), app.Catalog.T(i18n.Cancelled))
			return nil
		}

		if err := app.Archives.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(app.Out(), app.Catalog.T(i18n.Success))
		return nil
	},
}

func init() {
	CreateCmd.Flags().BoolVarP(&createYes, "yes", "y", false, "архивировать без подтверждения")
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "не спрашивать подтверждение")
}
