package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var sheetsService *sheets.Service

func InitSheets() {
	keyJSON := os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY")
	if keyJSON == "" {
		log.Println("GOOGLE_SERVICE_ACCOUNT_KEY not set, spreadsheet logging disabled")
		return
	}

	cfg, err := google.JWTConfigFromJSON([]byte(keyJSON), sheets.SpreadsheetsScope)
	if err != nil {
		log.Fatalf("Invalid Google service account key: %v", err)
	}

	ctx := context.Background()
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		log.Fatalf("Unable to create Sheets client: %v", err)
	}
	sheetsService = svc
}

// SheetClient reads and appends rows of the participant log sheet.
type SheetClient struct {
	spreadsheetID string
	valueRange    string
}

func NewSheetClient() *SheetClient {
	valueRange := os.Getenv("SHEET_RANGE")
	if valueRange == "" {
		valueRange = "Sheet1!A:K"
	}
	return &SheetClient{
		spreadsheetID: os.Getenv("SPREADSHEET_ID"),
		valueRange:    valueRange,
	}
}

func (c *SheetClient) Rows() ([][]string, error) {
	if sheetsService == nil {
		return nil, fmt.Errorf("sheets client not initialized")
	}

	resp, err := sheetsService.Spreadsheets.Values.Get(c.spreadsheetID, c.valueRange).Do()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (c *SheetClient) Append(row []string) error {
	if sheetsService == nil {
		return fmt.Errorf("sheets client not initialized")
	}

	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	_, err := sheetsService.Spreadsheets.Values.
		Append(c.spreadsheetID, c.valueRange, &sheets.ValueRange{
			Values: [][]interface{}{values},
		}).
		ValueInputOption("USER_ENTERED").
		Do()
	return err
}
