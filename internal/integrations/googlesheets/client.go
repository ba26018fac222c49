package googlesheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// SheetWriter replaces the contents of one range of a spreadsheet.
type SheetWriter interface {
	Clear(ctx context.Context, spreadsheetID, writeRange string) error
	Write(ctx context.Context, spreadsheetID, writeRange string, rows [][]interface{}) (string, error)
}

type sheetsWriter struct {
	sheetsService *sheets.Service
}

// NewSheetWriter authenticates with service account credentials.
func NewSheetWriter(ctx context.Context, credentialsJSON []byte) (SheetWriter, error) {
	credentials, err := google.CredentialsFromJSON(ctx, credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to load Google credentials: %w", err)
	}

	client := oauth2.NewClient(ctx, credentials.TokenSource)
	sheetsService, err := sheets.New(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Sheets client: %w", err)
	}

	return &sheetsWriter{sheetsService: sheetsService}, nil
}

func (w *sheetsWriter) Clear(ctx context.Context, spreadsheetID, writeRange string) error {
	_, err := w.sheetsService.Spreadsheets.Values.
		Clear(spreadsheetID, writeRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear range %s: %w", writeRange, err)
	}

	return nil
}

func (w *sheetsWriter) Write(ctx context.Context, spreadsheetID, writeRange string, rows [][]interface{}) (string, error) {
	resp, err := w.sheetsService.Spreadsheets.Values.
		Update(spreadsheetID, writeRange, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to write range %s: %w", writeRange, err)
	}

	return resp.UpdatedRange, nil
}
