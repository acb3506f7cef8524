// Package sheets appends registration rows to the configured Google Sheet
// using a service account.
package sheets

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// The sheet is expected to carry these columns in this order:
// CreatedAt, Name, Email, Phone, County, Course, Level, Goals.
const appendRange = "Sheet1!A1"

type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
}

var GlobalClient *Client

func InitClient(ctx context.Context, spreadsheetID, credentialsJSON string) error {
	if spreadsheetID == "" || credentialsJSON == "" {
		return fmt.Errorf("spreadsheet ID and service account credentials are required")
	}

	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return fmt.Errorf("could not create sheets service: %v", err)
	}

	GlobalClient = &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
	}
	return nil
}

// AppendRegistration adds one row for a successful registration.
func (c *Client) AppendRegistration(
	ctx context.Context,
	createdAt time.Time,
	name, email, phone, county, course, level, goals string,
) error {
	row := []interface{}{
		createdAt.UTC().Format(time.RFC3339),
		name, email, phone, county, course, level, goals,
	}

	valueRange := &sheetsapi.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, appendRange, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("could not append to sheet: %v", err)
	}
	return nil
}
