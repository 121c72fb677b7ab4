package prices

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"

	"max.ks1230/trade-test-tools/internal/logger"
)

var histogramLookupTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "trade_test_tools",
		Subsystem: "pricenode",
		Name:      "histogram_lookup_time_seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	},
	[]string{"error", "found"},
)

func observeLookup(elapsed time.Duration, err bool, found bool) {
	histogramLookupTime.
		WithLabelValues(strconv.FormatBool(err), strconv.FormatBool(found)).
		Observe(elapsed.Seconds())
}

type pushConfig interface {
	PushgatewayURL() string
	Job() string
}

// PushMetrics sends the lookup histogram to a Pushgateway. Nothing scrapes a one-shot process.
func PushMetrics(config pushConfig) error {
	if config.PushgatewayURL() == "" {
		return nil
	}

	err := push.New(config.PushgatewayURL(), config.Job()).
		Collector(histogramLookupTime).
		Push()
	if err != nil {
		return errors.Wrap(err, "pushing metrics")
	}

	logger.Info("metrics pushed", zap.String("gateway", config.PushgatewayURL()))
	return nil
}
