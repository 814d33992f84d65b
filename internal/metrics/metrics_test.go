package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/favcities/internal/model"
	"github.com/dtroode/favcities/internal/repository/memory"
	"github.com/dtroode/favcities/internal/token"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveLogin(LoginSuccess)
	m.ObserveLogin(LoginSuccess)
	m.ObserveLogin(LoginBadCredentials)
	m.ObserveDenial(DenialUnknownToken)
	m.ObserveMutation(model.FavoriteAdd)
	m.ObserveInconsistency()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues(LoginSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues(LoginBadCredentials)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.denials.WithLabelValues(DenialUnknownToken)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inconsistencies))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveLogin(LoginSuccess)
		m.ObserveDenial(DenialMissingToken)
		m.ObserveMutation(model.FavoriteRemove)
		m.ObserveInconsistency()
	})
}

func TestRegisterStoreGauges(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	users := memory.NewUserRepository()
	sessions := memory.NewSessionRepository(token.NewOpaque())
	RegisterStoreGauges(reg, users, sessions)

	u, err := users.Register(ctx, model.NewUser("a@x.com", "Al", "p1"))
	require.NoError(t, err)
	_, err = sessions.Issue(ctx, u)
	require.NoError(t, err)
	_, err = sessions.Issue(ctx, u)
	require.NoError(t, err)

	expected := `
# HELP favcities_issued_sessions Number of issued session tokens
# TYPE favcities_issued_sessions gauge
favcities_issued_sessions 2
# HELP favcities_registered_users Number of registered users
# TYPE favcities_registered_users gauge
favcities_registered_users 1
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "favcities_issued_sessions", "favcities_registered_users")
	assert.NoError(t, err)
}
