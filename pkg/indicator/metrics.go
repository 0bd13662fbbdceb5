package indicator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
)

var (
	metricsStochFastK = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stochflow_stoch_fast_k",
			Help: "latest fast %K value of the stochastic oscillator",
		}, []string{"symbol"},
	)

	metricsStochK = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stochflow_stoch_slow_k",
			Help: "latest slow %K value of the stochastic oscillator",
		}, []string{"symbol"},
	)

	metricsStochD = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stochflow_stoch_d",
			Help: "latest %D value of the stochastic oscillator",
		}, []string{"symbol"},
	)
)

func init() {
	prometheus.MustRegister(metricsStochFastK, metricsStochK, metricsStochD)
}

// BindMetrics exports the oscillator lines as prometheus gauges labeled by
// symbol. The export is opt-in via the metrics flag so that backtests do not
// pay for it.
func BindMetrics(inc *Stochastic, symbol string) {
	inc.OnUpdate(func(fastK, k, d float64) {
		if !viper.GetBool("metrics") {
			return
		}

		metricsStochFastK.WithLabelValues(symbol).Set(fastK)
		metricsStochK.WithLabelValues(symbol).Set(k)
		metricsStochD.WithLabelValues(symbol).Set(d)
	})
}
