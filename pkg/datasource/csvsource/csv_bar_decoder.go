package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/stochflow/stochflow/pkg/types"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time unix milli format.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not have prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")
)

// CSVBarDecoder is an extension point for CSVBarReader to support custom file formats.
type CSVBarDecoder func(record []string, interval time.Duration) (types.Bar, error)

// NewBinanceCSVBarReader creates a new CSVBarReader for Binance CSV files.
func NewBinanceCSVBarReader(csv *csv.Reader) *CSVBarReader {
	return &CSVBarReader{
		csv:     csv,
		decoder: BinanceCSVBarDecoder,
	}
}

// BinanceCSVBarDecoder decodes a CSV record from Binance or Bybit into a Bar.
func BinanceCSVBarDecoder(record []string, interval time.Duration) (types.Bar, error) {
	var b, empty types.Bar

	if len(record) < 5 {
		return b, ErrNotEnoughColumns
	}

	msec, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}

	b.StartTime = types.NewTimeFromUnix(time.UnixMilli(msec).Unix(), 0)
	b.EndTime = types.NewTimeFromUnix(b.StartTime.Time().Add(interval).Unix(), 0)

	if b.Open, err = strconv.ParseFloat(record[1], 64); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if b.High, err = strconv.ParseFloat(record[2], 64); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if b.Low, err = strconv.ParseFloat(record[3], 64); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if b.Close, err = strconv.ParseFloat(record[4], 64); err != nil {
		return empty, ErrInvalidPriceFormat
	}

	if len(record) > 5 {
		if b.Volume, err = strconv.ParseFloat(record[5], 64); err != nil {
			return empty, ErrInvalidVolumeFormat
		}
	}

	return b, nil
}

// NewMetaTraderCSVBarReader creates a new CSVBarReader for MetaTrader CSV files.
func NewMetaTraderCSVBarReader(csv *csv.Reader) *CSVBarReader {
	csv.Comma = ';'
	return &CSVBarReader{
		csv:     csv,
		decoder: MetaTraderCSVBarDecoder,
	}
}

// MetaTraderCSVBarDecoder decodes a CSV record from MetaTrader into a Bar.
func MetaTraderCSVBarDecoder(record []string, interval time.Duration) (types.Bar, error) {
	var b, empty types.Bar

	if len(record) < 6 {
		return b, ErrNotEnoughColumns
	}

	tStr := fmt.Sprintf("%s %s", record[0], record[1])
	t, err := time.Parse(MetaTraderTimeFormat, tStr)
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}

	b.StartTime = types.NewTimeFromUnix(t.Unix(), 0)
	b.EndTime = types.NewTimeFromUnix(t.Add(interval).Unix(), 0)

	if b.Open, err = strconv.ParseFloat(record[2], 64); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if b.High, err = strconv.ParseFloat(record[3], 64); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if b.Low, err = strconv.ParseFloat(record[4], 64); err != nil {
		return empty, ErrInvalidPriceFormat
	}
	if b.Close, err = strconv.ParseFloat(record[5], 64); err != nil {
		return empty, ErrInvalidPriceFormat
	}

	if len(record) > 6 {
		if b.Volume, err = strconv.ParseFloat(record[6], 64); err != nil {
			return empty, ErrInvalidVolumeFormat
		}
	}

	return b, nil
}
