package scan

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"ciao/internal/app/client"
	"ciao/internal/domain/visitor"
	"ciao/internal/i18n"

	"github.com/spf13/cobra"
)

var mode string

// ScanCmd запускает станцию сканирования на stdin.
var ScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Сканировать QR-коды посетителей",
	Long: `Читает по одному скану на строку из stdin и регистрирует приход или уход.
На каждый принятый скан печатается сообщение; следующий скан станция
принимает только после того, как сообщение показано.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		m, err := visitor.ParseMode(mode)
		if err != nil {
			return err
		}

		if !app.JSON {
			label := i18n.CheckIn
			if m == visitor.ModeCheckOut {
				label = i18n.CheckOut
			}
			fmt.Fprintf(app.Out(), "%s (Ctrl+D)\n\n", app.Catalog.T(label))
		}

		sum, err := app.Scan(cmd.Context(), m, app.JSON)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		if !app.JSON {
			fmt.Fprintf(app.Out(), "OK: %d, errors: %d, dropped: %d\n", sum.Accepted, sum.Failed, sum.Dropped)
		}
		return nil
	},
}

// CheckInCmd регистрирует приход по одному скану.
var CheckInCmd = &cobra.Command{
	Use:   "checkin [payload|-]",
	Short: "Зарегистрировать приход посетителя",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return once(cmd, args, visitor.ModeCheckIn)
	},
}

// CheckOutCmd регистрирует уход по номеру телефона из скана.
var CheckOutCmd = &cobra.Command{
	Use:   "checkout [payload|-]",
	Short: "Зарегистрировать уход посетителя",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return once(cmd, args, visitor.ModeCheckOut)
	},
}

func once(cmd *cobra.Command, args []string, m visitor.Mode) error {
	app, err := client.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	raw, err := payload(args, app.In())
	if err != nil {
		return err
	}

	station := visitor.NewStation(app.Visitors, m)
	res, _ := station.Handle(cmd.Context(), raw)
	if res.Err != nil {
		return res.Err
	}

	if app.JSON {
		enc := json.NewEncoder(app.Out())
		enc.SetIndent("", "  ")
		return enc.Encode(res.Record)
	}

	title, body := res.Alert(app.Catalog)
	fmt.Fprintf(app.Out(), "%s\n%s\n", title, body)
	return nil
}

// payload берет аргумент, а для "-" или без аргумента читает stdin.
func payload(args []string, in io.Reader) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	b, err := io.ReadAll(bufio.NewReader(in))
	if err != nil {
		return "", fmt.Errorf("read payload: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func init() {
	ScanCmd.Flags().StringVarP(&mode, "mode", "m", "checkin", "режим станции (checkin, checkout)")
}
