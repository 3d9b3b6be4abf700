package source

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"wasdex/report"
)

// ReadWorkbook decodes the named pages of a workbook file into sheets. Every
// requested page must be present; a missing page is a decode failure, not a
// degradable condition.
func ReadWorkbook(path string, pages []string) (map[string]report.Sheet, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer file.Close()

	return readPages(file, pages)
}

// ReadWorkbookFrom decodes pages from an in-memory workbook stream.
func ReadWorkbookFrom(r io.Reader, pages []string) (map[string]report.Sheet, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook stream: %w", err)
	}
	defer file.Close()

	return readPages(file, pages)
}

func readPages(file *excelize.File, pages []string) (map[string]report.Sheet, error) {
	sheets := make(map[string]report.Sheet, len(pages))
	for _, page := range pages {
		rows, err := file.GetRows(page)
		if err != nil {
			return nil, fmt.Errorf("read report page %q: %w", page, err)
		}
		sheet := make(report.Sheet, len(rows))
		for i, row := range rows {
			cells := make([]any, len(row))
			for j, value := range row {
				cells[j] = value
			}
			sheet[i] = cells
		}
		sheets[page] = sheet
	}
	return sheets, nil
}
