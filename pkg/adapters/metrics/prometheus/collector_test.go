package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestCollector() *Collector {
	return NewCollector(WithRegisterer(prometheus.NewRegistry()))
}

func TestObserveRequest(t *testing.T) {
	c := newTestCollector()

	c.ObserveRequest("GET", "/items/:item_id", 200, 5*time.Millisecond)
	c.ObserveRequest("GET", "/items/:item_id", 200, 7*time.Millisecond)
	c.ObserveRequest("POST", "/items/", 400, time.Millisecond)

	assert.Equal(t, float64(2),
		testutil.ToFloat64(c.requestsTotal.WithLabelValues("GET", "/items/:item_id", "200")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(c.requestsTotal.WithLabelValues("POST", "/items/", "400")))
}

func TestRequestsInFlight(t *testing.T) {
	c := newTestCollector()

	c.IncRequestsInFlight()
	c.IncRequestsInFlight()
	assert.Equal(t, float64(2), testutil.ToFloat64(c.requestsInFlight))

	c.DecRequestsInFlight()
	assert.Equal(t, float64(1), testutil.ToFloat64(c.requestsInFlight))
}

func TestItemCounters(t *testing.T) {
	c := newTestCollector()

	c.IncItemsCreated()
	c.IncItemsRead()
	c.IncItemsRead()

	assert.Equal(t, float64(1), testutil.ToFloat64(c.itemsCreated))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.itemsRead))
}
