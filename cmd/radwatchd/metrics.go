package main

import (
	"net/http"

	"github.com/friendsofgo/errors"
	"github.com/packetflare/go-radius/radius"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Track decoded packets by packet code
	packetsDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radwatchd_packets_total",
			Help: "Count of decoded packets by packet code",
		},
		[]string{"code"},
	)
	// Track decode failures by failure reason
	decodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radwatchd_decode_errors_total",
			Help: "Count of packet decode failures by reason",
		},
		[]string{"reason"},
	)
	// Track reassembled EAP payloads
	eapReassemblies = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "radwatchd_eap_reassemblies_total",
			Help: "Count of reassembled EAP message payloads",
		},
	)
	// Track tracked requests evicted before a response arrived
	pendingEvictions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "radwatchd_pending_evictions_total",
			Help: "Count of tracked requests evicted before a response arrived",
		},
	)
)

func init() {
	prometheus.MustRegister(packetsDecoded)
	prometheus.MustRegister(decodeErrors)
	prometheus.MustRegister(eapReassemblies)
	prometheus.MustRegister(pendingEvictions)
}

// decodeErrorReason maps a decode error onto its metric label.
func decodeErrorReason(err error) string {
	switch {
	case errors.Is(err, radius.ErrMalformedHeader):
		return "malformed_header"
	case errors.Is(err, radius.ErrTruncatedPacket):
		return "truncated_packet"
	case errors.Is(err, radius.ErrMalformedAVP):
		return "malformed_avp"
	case errors.Is(err, radius.ErrFragmentOverflow):
		return "fragment_overflow"
	}
	return "other"
}

func serveMetrics(address string) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(address, nil)
}
