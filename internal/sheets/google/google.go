// Package google implements the sheets.Grid port against the Google
// Sheets REST API, authenticating with a service account.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"eclor/internal/sheets"
)

// Config carries everything needed to reach one spreadsheet.
type Config struct {
	SpreadsheetID       string
	ServiceAccountEmail string
	PrivateKeyPEM       string
	ReadOnly            bool
}

// Scope returns the OAuth scope matching the configured access level.
func (c Config) Scope() string {
	if c.ReadOnly {
		return scopeReadOnly
	}
	return scopeReadWrite
}

// Client talks to a single spreadsheet. It is safe for concurrent use;
// the underlying token source refreshes bearer tokens as they expire.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	logger        *slog.Logger
}

// NewClient validates the credentials and builds the API client. No
// network call happens here; the first token exchange is deferred to
// the first read or write.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, &sheets.ConfigError{Reason: "missing spreadsheet id"}
	}
	ts, err := tokenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc, err := gsheet.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// ReadRange fetches a range with unformatted values, so numbers and
// date serials arrive as float64 instead of locale-rendered strings.
func (c *Client) ReadRange(ctx context.Context, rangeA1 string) ([][]sheets.Cell, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeA1).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapAPIError("read", rangeA1, err)
	}
	c.logger.DebugContext(ctx, "range read",
		slog.String("range", rangeA1),
		slog.Int("rows", len(resp.Values)))
	return sheets.GridFromRaw(resp.Values), nil
}

// WriteCell writes a single value with USER_ENTERED input, letting the
// spreadsheet re-parse it exactly as a manual edit would.
func (c *Client) WriteCell(ctx context.Context, tab, a1 string, value any) error {
	ref := sheets.TabRange(tab, a1)
	vr := &gsheet.ValueRange{
		Range:  ref,
		Values: [][]any{{value}},
	}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, ref, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return mapAPIError("write", ref, err)
	}
	c.logger.InfoContext(ctx, "cell written",
		slog.String("range", ref))
	return nil
}

// mapAPIError classifies transport failures. A rejected token exchange
// is an auth problem with the credentials; anything the spreadsheet API
// itself refused is a remote problem with the call.
func mapAPIError(op, rangeA1 string, err error) error {
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		status := 0
		if rerr.Response != nil {
			status = rerr.Response.StatusCode
		}
		return &sheets.AuthError{
			Status: status,
			Body:   string(rerr.Body),
			Err:    err,
		}
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &sheets.RemoteError{
			Op:     op,
			Range:  rangeA1,
			Status: gerr.Code,
			Body:   gerr.Message,
			Err:    err,
		}
	}
	return fmt.Errorf("%s %s: %w", op, rangeA1, err)
}
