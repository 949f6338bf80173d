package services

// RowStore is the slice of the spreadsheet collaborator the logger needs.
// utils.SheetClient implements it against the Google Sheets API.
type RowStore interface {
	Rows() ([][]string, error)
	Append(row []string) error
}

// Append statuses surfaced to the caller.
const (
	SheetStatusRecorded        = "recorded"
	SheetStatusAlreadyRecorded = "already recorded"
)

// SheetEntry is one participant row of the shared log sheet.
type SheetEntry struct {
	Name        string
	PhoneSuffix string // last 4 digits
	Lead        string
	Type        string
	Team        string
	Region      string
	Location    string
	Date        string
}

// Sheet row layout: marker, name, phone suffix, two reserved columns,
// region, team, lead, type, location, date.
const (
	sheetColName        = 1
	sheetColPhoneSuffix = 2
)

func sheetDedupKey(name, phoneSuffix string) string {
	return name + "|" + phoneSuffix
}

type SheetLogger struct {
	store RowStore
}

func NewSheetLogger(store RowStore) *SheetLogger {
	return &SheetLogger{store: store}
}

// Append writes the entry unless a row with the same name|phone key already
// exists, making the operation idempotent per participant. The read and the
// append are not atomic across processes; at human submission volume that is
// acceptable.
func (l *SheetLogger) Append(entry SheetEntry) (string, error) {
	rows, err := l.store.Rows()
	if err != nil {
		return "", err
	}

	key := sheetDedupKey(entry.Name, entry.PhoneSuffix)
	for _, row := range rows {
		if len(row) <= sheetColPhoneSuffix {
			continue
		}
		if sheetDedupKey(row[sheetColName], row[sheetColPhoneSuffix]) == key {
			return SheetStatusAlreadyRecorded, nil
		}
	}

	row := []string{
		"A",
		entry.Name,
		entry.PhoneSuffix,
		"",
		"",
		entry.Region,
		entry.Team,
		entry.Lead,
		entry.Type,
		entry.Location,
		entry.Date,
	}
	if err := l.store.Append(row); err != nil {
		return "", err
	}
	return SheetStatusRecorded, nil
}
