// cmd/client/cmd/visitors/list.go
package visitors

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"ciao/internal/app/client"
	"ciao/internal/domain/visitor"
	"ciao/internal/i18n"

	"github.com/spf13/cobra"
)

var (
	listFormat string
	openOnly   bool
	query      string
	day        string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать посетителей",
	Long: `Список посетителей, сначала свежие. Колонка индекса нужна
для "visitors delete".`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		filter := visitor.Filter{OpenOnly: openOnly, Query: query}
		if day != "" {
			d, err := time.ParseInLocation("2006-01-02", day, app.Catalog.Location())
			if err != nil {
				return fmt.Errorf("неверная дата %q, ожидается YYYY-MM-DD: %w", day, err)
			}
			filter.Day = &d
		}

		entries, err := app.Visitors.List(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("ошибка получения списка: %w", err)
		}

		format := listFormat
		if app.JSON {
			format = "json"
		}

		w := app.Out()
		switch format {
		case "json":
			return printJSON(w, entries)
		case "table":
			return printTable(w, app.Catalog, entries)
		case "csv":
			return printCSV(w, entries)
		default:
			return printSimple(w, app.Catalog, entries)
		}
	},
}

func checkout(c *i18n.Catalog, r visitor.Record) string {
	if r.Checkout == nil {
		return "-"
	}
	return c.FormatMillis(*r.Checkout)
}

func printSimple(w io.Writer, c *i18n.Catalog, entries []visitor.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, c.T(i18n.NoEntriesYet))
		return nil
	}

	for _, e := range entries {
		r := e.Record
		status := "●"
		if !r.Open() {
			status = "○"
		}
		fmt.Fprintf(w, "%d. [%s] %s, %s\n", e.Index, status, r.FullName(), r.Address())
		fmt.Fprintf(w, "   %s | %s: %s | %s: %s\n",
			r.PhoneNumber,
			c.T(i18n.CheckIn), c.FormatMillis(r.Timestamp),
			c.T(i18n.CheckOut), checkout(c, r))
	}
	fmt.Fprintf(w, "\n%d\n", len(entries))
	return nil
}

func printTable(w io.Writer, c *i18n.Catalog, entries []visitor.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, c.T(i18n.NoEntriesYet))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\t%s\t%s\t%s\t%s\t%s\t\n",
		c.T(i18n.LastName), c.T(i18n.FirstName), c.T(i18n.PhoneNumber), c.T(i18n.CheckIn), c.T(i18n.CheckOut))
	fmt.Fprintf(tw, "---\t---\t---\t---\t---\t---\t\n")

	for _, e := range entries {
		r := e.Record
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			e.Index,
			truncate(r.LastName, 24),
			truncate(r.FirstName, 24),
			r.PhoneNumber,
			c.FormatMillis(r.Timestamp),
			checkout(c, r),
		)
	}
	return tw.Flush()
}

func printJSON(w io.Writer, entries []visitor.Entry) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

func printCSV(w io.Writer, entries []visitor.Entry) error {
	fmt.Fprintln(w, "index,firstName,lastName,phoneNumber,timestamp,checkout")
	for _, e := range entries {
		r := e.Record
		out := ""
		if r.Checkout != nil {
			out = fmt.Sprint(*r.Checkout)
		}
		fmt.Fprintf(w, "%d,%q,%q,%q,%d,%s\n", e.Index, r.FirstName, r.LastName, r.PhoneNumber, r.Timestamp, out)
	}
	return nil
}

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json, csv)")
	ListCmd.Flags().BoolVar(&openOnly, "open", false, "только посетители без check-out")
	ListCmd.Flags().StringVarP(&query, "query", "q", "", "поиск по имени, адресу и телефону")
	ListCmd.Flags().StringVar(&day, "day", "", "день check-in (YYYY-MM-DD)")
}
