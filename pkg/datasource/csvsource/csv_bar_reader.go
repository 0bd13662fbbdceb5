package csvsource

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/stochflow/stochflow/pkg/types"
)

// BarReader is the interface for reading a bar series from a data source.
type BarReader interface {
	Read(interval time.Duration) (types.Bar, error)
	ReadAll(interval time.Duration) ([]types.Bar, error)
}

var _ BarReader = (*CSVBarReader)(nil)

// CSVBarReader is a BarReader that reads from a CSV file.
type CSVBarReader struct {
	csv     *csv.Reader
	decoder CSVBarDecoder
}

// MakeCSVBarReader is a factory method type that creates a new CSVBarReader.
type MakeCSVBarReader func(csv *csv.Reader) *CSVBarReader

// NewCSVBarReader creates a new CSVBarReader with the default Binance decoder.
func NewCSVBarReader(csv *csv.Reader) *CSVBarReader {
	return &CSVBarReader{
		csv:     csv,
		decoder: BinanceCSVBarDecoder,
	}
}

// NewCSVBarReaderWithDecoder creates a new CSVBarReader with the given decoder.
func NewCSVBarReaderWithDecoder(csv *csv.Reader, decoder CSVBarDecoder) *CSVBarReader {
	return &CSVBarReader{
		csv:     csv,
		decoder: decoder,
	}
}

// Read reads the next bar from the underlying CSV data.
func (r *CSVBarReader) Read(interval time.Duration) (types.Bar, error) {
	var b types.Bar

	rec, err := r.csv.Read()
	if err != nil {
		return b, err
	}

	return r.decoder(rec, interval)
}

// ReadAll reads all the bars from the underlying CSV data.
func (r *CSVBarReader) ReadAll(interval time.Duration) ([]types.Bar, error) {
	var bars []types.Bar
	for {
		b, err := r.Read(interval)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}

	return bars, nil
}
