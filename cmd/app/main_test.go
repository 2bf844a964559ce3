package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Wuubzi/healthunity-client/internal/activity"
	"github.com/Wuubzi/healthunity-client/internal/api"
	"github.com/Wuubzi/healthunity-client/internal/session"
	ucBookings "github.com/Wuubzi/healthunity-client/internal/usecase/bookings"
)

func newTestApp(t *testing.T, status int) (*appDeps, *session.Session) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != 0 {
			w.WriteHeader(status)
		}
	}))
	t.Cleanup(srv.Close)

	sess := session.New(session.NewStore(t.TempDir(), "clave-de-prueba"))
	require.NoError(t, sess.SetCredentials(session.Credentials{
		AccessToken: "token-de-prueba",
		Email:       "paciente@example.com",
		Expiry:      time.Now().Add(time.Hour),
		PatientID:   42,
	}))

	disp := activity.NewDispatcher(zap.NewNop())
	t.Cleanup(disp.Close)

	client := api.New(srv.URL, sess, zap.NewNop())
	return &appDeps{
		log:    zap.NewNop(),
		sess:   sess,
		client: client,
		disp:   disp,
		citas:  ucBookings.NewList(client, sess, disp),
	}, sess
}

func TestRun_RejectedTokenClearsSession(t *testing.T) {
	app, sess := newTestApp(t, http.StatusUnauthorized)

	require.True(t, sess.Active())
	err := app.run(context.Background(), []string{"cancelar", "7"})
	require.Error(t, err)
	require.False(t, sess.Active(), "un 401 debe tirar la sesión")
}

func TestRun_OtherErrorsKeepSession(t *testing.T) {
	app, sess := newTestApp(t, http.StatusInternalServerError)

	err := app.run(context.Background(), []string{"cancelar", "7"})
	require.Error(t, err)
	require.True(t, sess.Active(), "un 500 no implica sesión inválida")
}

func TestRun_SuccessfulCommand(t *testing.T) {
	app, sess := newTestApp(t, 0)

	require.NoError(t, app.run(context.Background(), []string{"cancelar", "7"}))
	require.True(t, sess.Active())
}
