package replay

import (
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// ReportRow is the parquet row written for every processed line.
type ReportRow struct {
	Session  string `parquet:"name=session, type=BYTE_ARRAY, convertedtype=UTF8"`
	Line     int32  `parquet:"name=line, type=INT32"`
	Text     string `parquet:"name=text, type=BYTE_ARRAY, convertedtype=UTF8"`
	Outcome  string `parquet:"name=outcome, type=BYTE_ARRAY, convertedtype=UTF8"`
	Ply      int32  `parquet:"name=ply, type=INT32"`
	Piece    string `parquet:"name=piece, type=BYTE_ARRAY, convertedtype=UTF8"`
	Captured string `parquet:"name=captured, type=BYTE_ARRAY, convertedtype=UTF8"`
	Error    string `parquet:"name=error, type=BYTE_ARRAY, convertedtype=UTF8"`
}

func (r Report) Rows() []ReportRow {
	rows := make([]ReportRow, 0, len(r.Results))
	for _, res := range r.Results {
		row := ReportRow{
			Session: r.Session,
			Line:    int32(res.Line),
			Text:    res.Text,
			Outcome: res.Outcome.String(),
			Error:   res.Error,
		}
		if res.Move != nil {
			row.Ply = int32(res.Move.Ply)
			row.Piece = res.Move.Piece
			row.Captured = res.Move.Captured
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteParquet writes the report rows to path with SNAPPY compression.
func WriteParquet(path string, report Report) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(ReportRow), 1)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range report.Rows() {
		if err := parquetWriter.Write(row); err != nil {
			return err
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return err
	}
	return fileWriter.Close()
}
