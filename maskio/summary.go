package maskio

import (
	"errors"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"

	"landcover-tools/landmask"
)

// ClassRow is one class of the mask's cell distribution.
type ClassRow struct {
	Code     int32   `parquet:"code, type=INT32"`
	Label    string  `parquet:"label, type=UTF8"`
	Cells    int64   `parquet:"cells, type=INT64"`
	Fraction float64 `parquet:"fraction, type=DOUBLE"`
}

// Summarize tallies the mask's cells per class code, in rule order with
// unclassified last. Every code gets a row even when its count is zero.
func Summarize(mask *landmask.RasterLayer) []ClassRow {
	counts := make(map[uint16]int64)
	for _, v := range mask.Data {
		counts[v]++
	}

	total := float64(len(mask.Data))
	var rows []ClassRow
	for _, code := range landmask.ClassCodes() {
		rows = append(rows, ClassRow{
			Code:     int32(code),
			Label:    landmask.ClassLabel(code),
			Cells:    counts[code],
			Fraction: float64(counts[code]) / total,
		})
	}
	return rows
}

// WriteSummaryParquet writes the class distribution as a Snappy-compressed
// parquet file.
func WriteSummaryParquet(rows []ClassRow, path string) (err error) {
	output, err := os.Create(path)
	if err != nil {
		return err
	}

	schema := parquet.SchemaOf(new(ClassRow))
	writer := parquet.NewGenericWriter[ClassRow](output, schema, parquet.Compression(&parquet.Snappy))
	defer func() {
		err = errors.Join(err, writer.Close(), output.Close())
	}()

	if _, err := writer.Write(rows); err != nil {
		return err
	}
	logrus.Infof("Wrote %s", path)
	return nil
}
