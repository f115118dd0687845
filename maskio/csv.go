package maskio

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// WriteSummaryCSV writes the class distribution as CSV.
func WriteSummaryCSV(rows []ClassRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	if _, err := f.WriteString("code,label,cells,fraction\n"); err != nil {
		return err
	}
	for _, row := range rows {
		line := fmt.Sprintf("%d,%s,%d,%g\n", row.Code, row.Label, row.Cells, row.Fraction)
		if _, err := f.WriteString(line); err != nil {
			return err
		}
	}
	if err = f.Sync(); err != nil {
		return err
	}
	return nil
}
