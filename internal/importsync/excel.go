package importsync

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// expectedColumns is the full header set of the worker master sheet. A sheet
// missing some of them still imports; the absent columns simply contribute no
// fields.
var expectedColumns = []string{
	ColEmployeeCode, ColName, ColSex, ColNationality, ColBirthDate,
	ColVisaExpire, ColVisaType, ColPostalCode, ColAddress, ColApartment,
	ColHireDate, ColRetireDate, ColCurrent,
}

// ReadEmployeeSheet loads one worksheet into header-keyed rows. The first
// row is the header; mapping is by header text, so column order in the file
// does not matter.
func ReadEmployeeSheet(path, sheet string, logger *zap.Logger) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer f.Close()

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := raw[0]
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}
	for _, col := range expectedColumns {
		if _, ok := index[col]; !ok {
			logger.Warn("sheet is missing a column", zap.String("column", col), zap.String("sheet", sheet))
		}
	}

	rows := make([]Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(Row, len(index))
		for col, i := range index {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				// excelize trims trailing empty cells; the column is still
				// present in the sheet
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
