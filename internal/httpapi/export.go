package httpapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kwen-qodo/screenshot-to-code/internal/export"
)

// handleExportEvents serves a user's event log as a JSON or CSV download.
func (s *Server) handleExportEvents(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return requestError{Status: http.StatusBadRequest, Message: "user_id is required"}
	}

	events, err := s.events.UserEvents(userID)
	if err != nil {
		return err
	}

	format := c.QueryParam("format")
	switch format {
	case "", "json":
		encoded, err := export.EventsJSON(events)
		if err != nil {
			return err
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s-events.json", userID))
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, encoded)
	case "csv":
		encoded, err := export.EventsCSV(events)
		if err != nil {
			return err
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s-events.csv", userID))
		return c.Blob(http.StatusOK, "text/csv", encoded)
	default:
		return requestError{Status: http.StatusBadRequest, Message: fmt.Sprintf("unsupported format %q", format)}
	}
}

type exportReportRequest struct {
	Title    string   `json:"title"`
	Snippets []string `json:"snippets"`
}

// handleExportReport turns generated HTML variants into a markdown report.
func (s *Server) handleExportReport(c echo.Context) error {
	var body exportReportRequest
	if err := decodeRequestBody(c, &body); err != nil {
		return err
	}
	if body.Title == "" {
		body.Title = "Generated Code"
	}

	report := export.CodeReport(body.Title, body.Snippets)
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=report.md")
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(report))
}
