package profile

import (
	"fmt"

	"ciao/internal/app/client"
	"ciao/internal/domain/profile"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	pngPath string
	pngSize int
)

var QRCmd = &cobra.Command{
	Use:   "qr",
	Short: "QR-код профиля",
	Long:  `Выводит QR-код профиля в терминал или записывает PNG с флагом --png.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		payload, err := app.Profile.Payload(cmd.Context())
		if err != nil {
			return err
		}
		return render(app, payload)
	},
}

// LinkCmd показывает QR-код со ссылкой на форму для посетителей.
var LinkCmd = &cobra.Command{
	Use:   "link",
	Short: "QR-код ссылки для посетителей",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		if pngPath == "" {
			fmt.Fprintln(app.Out(), app.Config.LinkURL)
		}
		return render(app, app.Config.LinkURL)
	},
}

func render(app *client.App, content string) error {
	if pngPath == "" {
		text, err := profile.QRText(content)
		if err != nil {
			return err
		}
		fmt.Fprint(app.Out(), text)
		return nil
	}

	png, err := profile.QRPNG(content, pngSize)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(app.Layout.Fs, pngPath, png, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", pngPath, err)
	}
	fmt.Fprintln(app.Out(), pngPath)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{QRCmd, LinkCmd} {
		c.Flags().StringVar(&pngPath, "png", "", "записать PNG в файл вместо вывода в терминал")
		c.Flags().IntVar(&pngSize, "size", 256, "размер PNG в пикселях")
	}
}
