package visitors

import (
	"encoding/json"
	"fmt"

	"ciao/internal/app/client"
	"ciao/internal/config"
	"ciao/internal/i18n"

	"github.com/spf13/cobra"
)

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Выгрузить список в CSV",
	Long: `Записывает список в CSV и передает настроенному получателю
(share_target: dir, s3 или stdout). Список помечается как экспортированный
только после успешной передачи.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		sharer, err := app.Sharer()
		if err != nil {
			return err
		}

		res, err := app.Exports.Export(cmd.Context(), sharer)
		if err != nil {
			return fmt.Errorf("ошибка выгрузки: %w", err)
		}

		// в stdout уходит сам документ
		if app.Config.Share.Target == config.ShareStdout {
			return nil
		}
		if app.JSON {
			return json.NewEncoder(app.Out()).Encode(res)
		}
		fmt.Fprintf(app.Out(), "%s: %s (%d)\n", app.Catalog.T(i18n.Success), res.Location, res.Count)
		return nil
	},
}
