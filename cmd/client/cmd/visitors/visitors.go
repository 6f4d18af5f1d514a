package visitors

import (
	"github.com/spf13/cobra"
)

// VisitorsCmd - родительская команда для операций со списком посетителей
var VisitorsCmd = &cobra.Command{
	Use:   "visitors",
	Short: "Список посетителей",
	Long:  `Просмотр, удаление, очистка и CSV-выгрузка текущего списка посетителей.`,
}
