package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// exportSheet describes one category's worksheet layout
type exportSheet struct {
	name    string
	headers []string
	row     func(r SearchResult) []interface{}
}

var exportSheets = []exportSheet{
	{
		name:    "Files",
		headers: []string{"Reference", "Client", "Case Type", "File Type", "Category", "Location", "Shelf", "Box", "Confidentiality", "Status", "Score"},
		row: func(r SearchResult) []interface{} {
			return []interface{}{r.ReferenceNumber, r.ClientName, r.CaseType, r.FileType, r.DocumentCategory, r.WarehouseLocation, r.ShelfNumber, r.BoxNumber, r.ConfidentialityLevel, r.StorageStatus, r.RelevanceScore}
		},
	},
	{
		name:    "Clients",
		headers: []string{"Name", "Email", "Phone", "Type", "Status", "Score"},
		row: func(r SearchResult) []interface{} {
			return []interface{}{r.ClientName, r.Email, r.Phone, r.ClientType, r.Status, r.RelevanceScore}
		},
	},
	{
		name:    "Cases",
		headers: []string{"Reference", "Client", "Case Type", "Status", "Priority", "Lawyer", "Estimated Value", "Score"},
		row: func(r SearchResult) []interface{} {
			return []interface{}{r.ReferenceNumber, r.ClientName, r.CaseType, r.Status, r.Priority, r.AssignedLawyer, r.EstimatedValue, r.RelevanceScore}
		},
	},
	{
		name:    "Payments",
		headers: []string{"Invoice", "Client", "Case Type", "Amount", "Method", "Status", "Score"},
		row: func(r SearchResult) []interface{} {
			return []interface{}{r.InvoiceNumber, r.ClientName, r.CaseType, r.Amount, r.PaymentMethod, r.Status, r.RelevanceScore}
		},
	},
	{
		name:    "Access History",
		headers: []string{"File Reference", "User", "Role", "Access Type", "Timestamp", "Score"},
		row: func(r SearchResult) []interface{} {
			ts := ""
			if r.Timestamp != nil {
				ts = r.Timestamp.Format(time.RFC3339)
			}
			return []interface{}{r.ReferenceNumber, r.UserName, r.UserRole, r.AccessType, ts, r.RelevanceScore}
		},
	},
	{
		name:    "Comments",
		headers: []string{"User", "Role", "Entity", "Comment", "Score"},
		row: func(r SearchResult) []interface{} {
			return []interface{}{r.UserName, r.UserRole, r.EntityInfo, r.Snippet, r.RelevanceScore}
		},
	},
}

// ExportSearchResults writes a unified search result to an Excel workbook
// with one sheet per category. The caller owns closing the returned file.
func ExportSearchResults(result *UnifiedResult) (*excelize.File, error) {
	f := excelize.NewFile()

	categories := [][]SearchResult{
		result.Files, result.Clients, result.Cases,
		result.Payments, result.AccessHistory, result.Comments,
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	for i, sheet := range exportSheets {
		if i == 0 {
			// Reuse the default sheet for the first category
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("renaming sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("creating sheet %s: %w", sheet.name, err)
			}
		}

		for col, header := range sheet.headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet.name, cell, header)
		}
		endCell, _ := excelize.CoordinatesToCellName(len(sheet.headers), 1)
		f.SetCellStyle(sheet.name, "A1", endCell, headerStyle)

		for rowIdx, result := range categories[i] {
			for col, value := range sheet.row(result) {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				f.SetCellValue(sheet.name, cell, value)
			}
		}
	}

	return f, nil
}
