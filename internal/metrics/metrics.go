package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dtroode/favcities/internal/model"
)

const namespace = "favcities"

// Login results.
const (
	LoginSuccess        = "success"
	LoginNoSuchAccount  = "no_such_account"
	LoginBadCredentials = "bad_credentials"
	LoginError          = "error"
)

// Denial reasons for token verification.
const (
	DenialMissingToken  = "missing_token"
	DenialUnknownToken  = "unknown_token"
	DenialInconsistency = "inconsistency"
	DenialNotAuthorized = "not_authorized"
)

// Metrics holds the collectors of auth decisions and favorite mutations.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	logins          *prometheus.CounterVec
	denials         *prometheus.CounterVec
	mutations       *prometheus.CounterVec
	inconsistencies prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Total number of login attempts by result",
			},
			[]string{"result"},
		),
		denials: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_denials_total",
				Help:      "Total number of denied authenticated calls by reason",
			},
			[]string{"reason"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "favorite_mutations_total",
				Help:      "Total number of applied favorite city mutations",
			},
			[]string{"op"},
		),
		inconsistencies: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "internal_inconsistencies_total",
				Help:      "Total number of sessions whose user record was missing",
			},
		),
	}

	reg.MustRegister(m.logins, m.denials, m.mutations, m.inconsistencies)

	return m
}

// RegisterStoreGauges exposes the sizes of the user and session tables.
func RegisterStoreGauges(reg prometheus.Registerer, users model.UserStore, sessions model.SessionStore) {
	reg.MustRegister(
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "registered_users",
				Help:      "Number of registered users",
			},
			func() float64 { return float64(users.Count(context.Background())) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "issued_sessions",
				Help:      "Number of issued session tokens",
			},
			func() float64 { return float64(sessions.Count(context.Background())) },
		),
	)
}

func (m *Metrics) ObserveLogin(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveDenial(reason string) {
	if m == nil {
		return
	}
	m.denials.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveMutation(op model.FavoriteOp) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op.String()).Inc()
}

func (m *Metrics) ObserveInconsistency() {
	if m == nil {
		return
	}
	m.inconsistencies.Inc()
}
