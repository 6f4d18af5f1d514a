// cmd/client/cmd/init.go
package cmd

import (
	"ciao/cmd/client/cmd/archive"
	"ciao/cmd/client/cmd/profile"
	"ciao/cmd/client/cmd/scan"
	"ciao/cmd/client/cmd/token"
	"ciao/cmd/client/cmd/visitors"
)

func init() {
	// Сканирование
	rootCmd.AddCommand(scan.ScanCmd)
	rootCmd.AddCommand(scan.CheckInCmd)
	rootCmd.AddCommand(scan.CheckOutCmd)

	// Список посетителей
	rootCmd.AddCommand(visitors.VisitorsCmd)
	visitors.VisitorsCmd.AddCommand(visitors.ListCmd)
	visitors.VisitorsCmd.AddCommand(visitors.DeleteCmd)
	visitors.VisitorsCmd.AddCommand(visitors.ClearCmd)
	visitors.VisitorsCmd.AddCommand(visitors.ExportCmd)

	// Архив
	rootCmd.AddCommand(archive.ArchiveCmd)
	archive.ArchiveCmd.AddCommand(archive.CreateCmd)
	archive.ArchiveCmd.AddCommand(archive.ListCmd)
	archive.ArchiveCmd.AddCommand(archive.ShareCmd)
	archive.ArchiveCmd.AddCommand(archive.DeleteCmd)

	// Профиль оператора
	rootCmd.AddCommand(profile.ProfileCmd)
	profile.ProfileCmd.AddCommand(profile.SetCmd)
	profile.ProfileCmd.AddCommand(profile.ShowCmd)
	profile.ProfileCmd.AddCommand(profile.DeleteCmd)
	profile.ProfileCmd.AddCommand(profile.QRCmd)
	rootCmd.AddCommand(profile.LinkCmd)

	rootCmd.AddCommand(token.TokenCmd)
}
