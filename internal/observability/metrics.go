package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	DonationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rotnot_donations_created_total",
		Help: "Number of donations created.",
	})

	DonationTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rotnot_donation_transitions_total",
		Help: "Donation status transitions by target status.",
	}, []string{"to"})

	SurplusClaims = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rotnot_surplus_claims_total",
		Help: "Number of surplus posts claimed.",
	})

	ExpirySweepRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rotnot_expiry_sweep_runs_total",
		Help: "Number of expiry sweeper runs.",
	})

	ExpirySweepUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rotnot_expiry_sweep_updates_total",
		Help: "Number of food items reclassified by the sweeper.",
	})
)

// StartMetricsServer exposes /metrics on its own listener so the scrape
// endpoint never shares a port with the API.
func StartMetricsServer(port string) {
	if port == "" {
		return
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Infof("metrics listening on :%s", port)
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			log.Errorf("metrics server stopped: %v", err)
		}
	}()
}
