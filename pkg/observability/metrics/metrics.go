package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

// Process-wide counters exposed in Prometheus text format. Counters only
// increase; rates are derived by the scraper.
var (
	reportsGenerated  atomic.Int64
	highRiskReports   atomic.Int64
	providerFailures  atomic.Int64
	reportCacheHits   atomic.Int64
	reportCacheMisses atomic.Int64
	eventsPublished   atomic.Int64
	requestsTotal     atomic.Int64
	requestsRejected  atomic.Int64
)

func IncReportsGenerated()  { reportsGenerated.Add(1) }
func IncHighRiskReports()   { highRiskReports.Add(1) }
func IncProviderFailures()  { providerFailures.Add(1) }
func IncReportCacheHits()   { reportCacheHits.Add(1) }
func IncReportCacheMisses() { reportCacheMisses.Add(1) }
func IncEventsPublished()   { eventsPublished.Add(1) }
func IncRequestsTotal()     { requestsTotal.Add(1) }
func IncRequestsRejected()  { requestsRejected.Add(1) }

// Handler serves the counters at a scrape endpoint.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		WritePrometheus(w)
	})
}

func WritePrometheus(w http.ResponseWriter) {
	write := func(name, help string, value int64) {
		fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s counter\n%s %d\n", name, help, name, name, value)
	}
	write("envirohealth_reports_generated_total", "Risk reports generated.", reportsGenerated.Load())
	write("envirohealth_reports_high_risk_total", "Reports assessed at high composite risk.", highRiskReports.Load())
	write("envirohealth_provider_failures_total", "Environmental provider fetches that fell back to neutral values.", providerFailures.Load())
	write("envirohealth_report_cache_hits_total", "Report cache hits.", reportCacheHits.Load())
	write("envirohealth_report_cache_misses_total", "Report cache misses.", reportCacheMisses.Load())
	write("envirohealth_events_published_total", "Events published to the bus.", eventsPublished.Load())
	write("envirohealth_requests_total", "HTTP requests received.", requestsTotal.Load())
	write("envirohealth_requests_rejected_total", "HTTP requests rejected before handling.", requestsRejected.Load())
}
