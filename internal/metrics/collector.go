package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK = "ok"
)

// Collector holds the domain metrics of the listing core.
type Collector struct {
	feedFetches  *prometheus.CounterVec
	snapshotSize prometheus.Gauge
	subscribers  prometheus.Gauge
}

func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	c := &Collector{
		feedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "fetches_total",
			Help:      "Auction feed fetches by outcome.",
		}, []string{"outcome"}),
		snapshotSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "auctions",
			Help:      "Records in the published auction snapshot.",
		}),
		subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "countdown",
			Name:      "subscribers",
			Help:      "Live subscriptions to the shared countdown tick.",
		}),
	}

	reg.MustRegister(c.feedFetches, c.snapshotSize, c.subscribers)

	return c
}

// FeedFetched counts one fetch. outcome is OutcomeOK or a failure error code.
func (c *Collector) FeedFetched(outcome string) {
	c.feedFetches.WithLabelValues(outcome).Inc()
}

func (c *Collector) SnapshotPublished(size int) {
	c.snapshotSize.Set(float64(size))
}

func (c *Collector) SubscribersChanged(n int) {
	c.subscribers.Set(float64(n))
}
