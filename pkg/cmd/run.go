package cmd

import (
	"encoding/csv"
	"net/http"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stochflow/stochflow/pkg/datasource/csvsource"
	"github.com/stochflow/stochflow/pkg/indicator"
	"github.com/stochflow/stochflow/pkg/types"
)

func init() {
	RunCmd.Flags().String("csv", "", "path to the csv bar file")
	RunCmd.Flags().String("format", "binance", "csv format: binance or metatrader")
	RunCmd.Flags().String("symbol", "BTCUSDT", "symbol label for the series")
	RunCmd.Flags().Duration("interval", time.Minute, "bar interval of the csv data")
	RunCmd.Flags().Int("period", 14, "lookback period of the rolling high-low range")
	RunCmd.Flags().Int("k-period", 3, "smoothing period of the slow %K line")
	RunCmd.Flags().Int("d-period", 3, "smoothing period of the %D line")
	RunCmd.Flags().Int("sma-window", 20, "window of the close-price SMA")
	RunCmd.Flags().Int("tail", 10, "number of trailing rows to print")

	_ = RunCmd.MarkFlagRequired("csv")

	RootCmd.AddCommand(RunCmd)
}

var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "stream a csv bar file through the stochastic oscillator",

	RunE: func(cmd *cobra.Command, args []string) error {
		csvFile, err := cmd.Flags().GetString("csv")
		if err != nil {
			return err
		}

		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}

		interval, err := cmd.Flags().GetDuration("interval")
		if err != nil {
			return err
		}

		period, err := cmd.Flags().GetInt("period")
		if err != nil {
			return err
		}

		kPeriod, err := cmd.Flags().GetInt("k-period")
		if err != nil {
			return err
		}

		dPeriod, err := cmd.Flags().GetInt("d-period")
		if err != nil {
			return err
		}

		smaWindow, err := cmd.Flags().GetInt("sma-window")
		if err != nil {
			return err
		}

		tail, err := cmd.Flags().GetInt("tail")
		if err != nil {
			return err
		}

		f, err := os.Open(csvFile)
		if err != nil {
			return errors.Wrapf(err, "can not open csv file %s", csvFile)
		}
		defer f.Close()

		var reader *csvsource.CSVBarReader
		switch format {
		case "metatrader":
			reader = csvsource.NewMetaTraderCSVBarReader(csv.NewReader(f))
		case "binance":
			reader = csvsource.NewBinanceCSVBarReader(csv.NewReader(f))
		default:
			return errors.Errorf("unsupported csv format %q", format)
		}

		bars, err := reader.ReadAll(interval)
		if err != nil {
			return errors.Wrap(err, "csv read error")
		}

		if len(bars) == 0 {
			return errors.New("no bars found in the csv file")
		}

		stoch, err := indicator.NewStochastic(period, kPeriod, dPeriod)
		if err != nil {
			return err
		}

		sma, err := indicator.NewSMA(smaWindow)
		if err != nil {
			return err
		}

		if listen := viper.GetString("metrics-listen"); listen != "" && viper.GetBool("metrics") {
			indicator.BindMetrics(stoch, symbol)
			go func() {
				http.Handle("/metrics", promhttp.Handler())
				if err := http.ListenAndServe(listen, nil); err != nil {
					log.WithError(err).Error("metrics server error")
				}
			}()
		}

		type row struct {
			bar         types.Bar
			fastK, k, d float64
			sma         float64
			ready       bool
		}

		var rows []row
		for _, b := range bars {
			b.Symbol = symbol
			stoch.PushB(b)
			sma.PushB(b)

			rows = append(rows, row{
				bar:   b,
				fastK: stoch.FastK.Last(),
				k:     stoch.K.Last(),
				d:     stoch.D.Last(),
				ready: stoch.IsReady(),
				sma:   sma.Last(),
			})
		}

		log.WithFields(log.Fields{
			"symbol":  symbol,
			"bars":    len(bars),
			"period":  period,
			"kPeriod": kPeriod,
			"dPeriod": dPeriod,
		}).Info("bar series processed")

		if !stoch.IsReady() {
			log.Warnf("the oscillator did not warm up, need at least %d bars, got %d",
				period+kPeriod+dPeriod-2, len(bars))
		}

		if tail > len(rows) {
			tail = len(rows)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"time", "close", "fast %K", "slow %K", "%D", "SMA", "ready"})
		for _, r := range rows[len(rows)-tail:] {
			t.AppendRow(table.Row{
				r.bar.StartTime.Time().Format("2006-01-02 15:04:05"),
				r.bar.Close,
				r.fastK,
				r.k,
				r.d,
				r.sma,
				r.ready,
			})
		}
		t.Render()

		return nil
	},
}
