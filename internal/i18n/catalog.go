// Package i18n содержит каталоги подписей и сообщений для выгрузок и вывода.
package i18n

import (
	"golang.org/x/text/language"
)

// Ключи сообщений.
const (
	CheckIn     = "check-in"
	CheckOut    = "check-out"
	FirstName   = "firstName"
	LastName    = "lastName"
	Street      = "street"
	PostalCode  = "postalCode"
	City        = "city"
	PhoneNumber = "phoneNumber"
	Email       = "email"
	DateOfBirth = "dateOfBirth"

	Error                 = "error"
	Success               = "success"
	InvalidFormat         = "invalidFormat"
	DataIncompleteInvalid = "dataIncompleteInvalid"
	NoMatchingCheckIn     = "noMatchingCheckIn"
	DataRead              = "dataRead"
	CheckedOut            = "checkedOut"
	NoEntriesYet          = "noEntriesYet"
	NoArchivedEntriesYet  = "noArchivedEntriesYet"
	ArchiveConfirm        = "archiveConfirm"
	Cancelled             = "cancelled"
	DeleteEntry           = "deleteEntry"
	DeleteEntries         = "deleteEntries"
	DeleteBackup          = "deleteBackup"
	NoAddressStored       = "noAddressStored"
	Unauthorized          = "unauthorized"
)

var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Italian,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		CheckIn:               "Check-in",
		CheckOut:              "Check-out",
		FirstName:             "First name",
		LastName:              "Last name",
		Street:                "Street",
		PostalCode:            "Postal code",
		City:                  "City",
		PhoneNumber:           "Phone number",
		Email:                 "Email",
		DateOfBirth:           "Date of birth",
		Error:                 "Error",
		Success:               "Success",
		InvalidFormat:         "The scanned code has an invalid format.",
		DataIncompleteInvalid: "The scanned data is incomplete or invalid.",
		NoMatchingCheckIn:     "No matching check-in found for this phone number.",
		DataRead:              "Data read successfully:",
		CheckedOut:            "Checked out:",
		NoEntriesYet:          "No entries yet.",
		NoArchivedEntriesYet:  "No archived entries yet.",
		ArchiveConfirm:        "The entries have not been exported yet. Archive them anyway?",
		Cancelled:             "Cancelled.",
		DeleteEntry:           "Delete this entry?",
		DeleteEntries:         "Delete all entries?",
		DeleteBackup:          "Delete this archive?",
		NoAddressStored:       "No address stored.",
		Unauthorized:          "Unauthorized",
	},
	language.German: {
		CheckIn:               "Check-in",
		CheckOut:              "Check-out",
		FirstName:             "Vorname",
		LastName:              "Nachname",
		Street:                "Strasse",
		PostalCode:            "PLZ",
		City:                  "Ort",
		PhoneNumber:           "Telefonnummer",
		Email:                 "E-Mail",
		DateOfBirth:           "Geburtsdatum",
		Error:                 "Fehler",
		Success:               "Erfolg",
		InvalidFormat:         "Der gescannte Code hat ein ungültiges Format.",
		DataIncompleteInvalid: "Die gescannten Daten sind unvollständig oder ungültig.",
		NoMatchingCheckIn:     "Kein passender Check-in für diese Telefonnummer gefunden.",
		DataRead:              "Daten erfolgreich gelesen:",
		CheckedOut:            "Ausgecheckt:",
		NoEntriesYet:          "Noch keine Einträge.",
		NoArchivedEntriesYet:  "Noch keine archivierten Einträge.",
		ArchiveConfirm:        "Die Einträge wurden noch nicht exportiert. Trotzdem archivieren?",
		Cancelled:             "Abgebrochen.",
		DeleteEntry:           "Diesen Eintrag löschen?",
		DeleteEntries:         "Alle Einträge löschen?",
		DeleteBackup:          "Dieses Archiv löschen?",
		NoAddressStored:       "Keine Adresse gespeichert.",
		Unauthorized:          "Nicht autorisiert",
	},
	language.French: {
		CheckIn:               "Arrivée",
		CheckOut:              "Départ",
		FirstName:             "Prénom",
		LastName:              "Nom",
		Street:                "Rue",
		PostalCode:            "NPA",
		City:                  "Localité",
		PhoneNumber:           "Téléphone",
		Email:                 "E-mail",
		DateOfBirth:           "Date de naissance",
		Error:                 "Erreur",
		Success:               "Succès",
		InvalidFormat:         "Le code scanné a un format invalide.",
		DataIncompleteInvalid: "Les données scannées sont incomplètes ou invalides.",
		NoMatchingCheckIn:     "Aucune arrivée correspondante pour ce numéro de téléphone.",
		DataRead:              "Données lues avec succès :",
		CheckedOut:            "Départ enregistré :",
		NoEntriesYet:          "Aucune entrée pour l'instant.",
		NoArchivedEntriesYet:  "Aucune entrée archivée pour l'instant.",
		ArchiveConfirm:        "Les entrées n'ont pas encore été exportées. Archiver quand même ?",
		Cancelled:             "Annulé.",
		DeleteEntry:           "Supprimer cette entrée ?",
		DeleteEntries:         "Supprimer toutes les entrées ?",
		DeleteBackup:          "Supprimer cette archive ?",
		NoAddressStored:       "Aucune adresse enregistrée.",
		Unauthorized:          "Non autorisé",
	},
	language.Italian: {
		CheckIn:               "Entrata",
		CheckOut:              "Uscita",
		FirstName:             "Nome",
		LastName:              "Cognome",
		Street:                "Via",
		PostalCode:            "NPA",
		City:                  "Località",
		PhoneNumber:           "Telefono",
		Email:                 "E-mail",
		DateOfBirth:           "Data di nascita",
		Error:                 "Errore",
		Success:               "Successo",
		InvalidFormat:         "Il codice scansionato ha un formato non valido.",
		DataIncompleteInvalid: "I dati scansionati sono incompleti o non validi.",
		NoMatchingCheckIn:     "Nessuna entrata corrispondente per questo numero di telefono.",
		DataRead:              "Dati letti con successo:",
		CheckedOut:            "Uscita registrata:",
		NoEntriesYet:          "Ancora nessuna voce.",
		NoArchivedEntriesYet:  "Ancora nessuna voce archiviata.",
		ArchiveConfirm:        "Le voci non sono ancora state esportate. Archiviare comunque?",
		Cancelled:             "Annullato.",
		DeleteEntry:           "Eliminare questa voce?",
		DeleteEntries:         "Eliminare tutte le voci?",
		DeleteBackup:          "Eliminare questo archivio?",
		NoAddressStored:       "Nessun indirizzo salvato.",
		Unauthorized:          "Non autorizzato",
	},
}

// Форматы даты и времени, близкие к принятым в каждой локали.
var layouts = map[language.Tag]string{
	language.English: "1/2/2006, 3:04:05 PM",
	language.German:  "2.1.2006, 15:04:05",
	language.French:  "02/01/2006 15:04:05",
	language.Italian: "2/1/2006, 15:04:05",
}
