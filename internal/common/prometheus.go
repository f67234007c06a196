package common

import "github.com/prometheus/client_golang/prometheus"

const (
	QuestAPIRequestTotal   = "nftdrop_quest_api_requests_total"
	TransferTotal          = "nftdrop_transfer_total"
	SkippedSubmissionTotal = "nftdrop_skipped_submissions_total"
	ResolvedAddresses      = "nftdrop_resolved_addresses"
	DropRunDurationSeconds = "nftdrop_run_duration_seconds"
)

var (
	PromGauges = map[string]*prometheus.GaugeVec{
		ResolvedAddresses: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: ResolvedAddresses,
			Help: "Number of addresses resolved by the last drop run",
		}, []string{"quest_id"}),
	}

	PromCounters = map[string]*prometheus.CounterVec{
		QuestAPIRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: QuestAPIRequestTotal,
			Help: "Count of all requests to the quest platform",
		}, []string{"method", "status_code"}),
		TransferTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: TransferTotal,
			Help: "Count of all NFT transfer attempts",
		}, []string{"result"}),
		SkippedSubmissionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: SkippedSubmissionTotal,
			Help: "Count of quest submissions which produced no address",
		}, []string{"reason"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		DropRunDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    DropRunDurationSeconds,
			Help:    "Duration of drop runs",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}, []string{"result"}),
	}
)
