package profile

import (
	"encoding/json"
	"fmt"
	"strings"

	"ciao/internal/app/client"
	"ciao/internal/domain/profile"
	"ciao/internal/i18n"

	"github.com/spf13/cobra"
)

var (
	p         profile.Profile
	deleteYes bool
)

// ProfileCmd - родительская команда для профиля оператора
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Профиль оператора",
	Long: `Контактная карточка самого оператора. "profile qr" показывает ее как QR-код,
по которому другая станция ciao регистрирует приход оператора.`,
}

var SetCmd = &cobra.Command{
	Use:   "set",
	Short: "Сохранить профиль",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		in := p
		in.FirstName = strings.TrimSpace(in.FirstName)
		in.LastName = strings.TrimSpace(in.LastName)
		in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)

		if err := app.Profile.Save(cmd.Context(), in); err != nil {
			return err
		}
		fmt.Fprintln(app.Out(), app.Catalog.T(i18n.Success))
		return nil
	},
}

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать профиль",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		prof, err := app.Profile.Get(cmd.Context())
		if err != nil {
			return err
		}

		if app.JSON {
			encoder := json.NewEncoder(app.Out())
			encoder.SetIndent("", "  ")
			return encoder.Encode(prof)
		}

		c := app.Catalog
		w := app.Out()
		fmt.Fprintf(w, "%s: %s\n", c.T(i18n.FirstName), prof.FirstName)
		fmt.Fprintf(w, "%s: %s\n", c.T(i18n.LastName), prof.LastName)
		fmt.Fprintf(w, "%s: %s\n", c.T(i18n.Street), prof.Street)
		fmt.Fprintf(w, "%s: %s\n", c.T(i18n.PostalCode), prof.PostalCode)
		fmt.Fprintf(w, "%s: %s\n", c.T(i18n.City), prof.City)
		fmt.Fprintf(w, "%s: %s\n", c.T(i18n.PhoneNumber), prof.PhoneNumber)
		if prof.Email != "" {
			fmt.Fprintf(w, "%s: %s\n", c.T(i18n.Email), prof.Email)
		}
		if prof.DateOfBirth != "" {
			fmt.Fprintf(w, "%s: %s\n", c.T(i18n.DateOfBirth), prof.DateOfBirth)
		}
		return nil
	},
}

var DeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Удалить профиль",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		ok, err := app.Prompt(i18n.DeleteEntry, deleteYes).Confirm(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(app.Out(), app.Catalog.T(i18n.Cancelled))
			return nil
		}

		if err := app.Profile.Delete(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(app.Out(), app.Catalog.T(i18n.Success))
		return nil
	},
}

func init() {
	f := SetCmd.Flags()
	f.StringVar(&p.FirstName, "first-name", "", "имя")
	f.StringVar(&p.LastName, "last-name", "", "фамилия")
	f.StringVar(&p.Street, "street", "", "улица и номер дома")
	f.StringVar(&p.PostalCode, "postal-code", "", "почтовый индекс")
	f.StringVar(&p.City, "city", "", "город")
	f.StringVar(&p.PhoneNumber, "phone", "", "номер телефона (минимум 10 символов)")
	f.StringVar(&p.Email, "email", "", "email (необязательно)")
	f.StringVar(&p.DateOfBirth, "date-of-birth", "", "дата рождения (необязательно)")
	for _, name := range []string{"first-name", "last-name", "street", "postal-code", "city", "phone"} {
		_ = SetCmd.MarkFlagRequired(name)
	}

	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "не спрашивать подтверждение")
}
