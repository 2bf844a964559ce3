package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type callbackResult struct {
	code string
	err  error
}

// waitForCallback levanta el listener de loopback que recibe el
// redirect de Auth0, valida el state y entrega el authorization code.
// Se apaga solo después del primer redirect o cuando el contexto muere.
func waitForCallback(ctx context.Context, addr, state string) (string, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	done := make(chan callbackResult, 1)

	r.GET("/redirect", func(c *gin.Context) {
		if c.Query("state") != state {
			c.String(http.StatusBadRequest, "state inválido")
			done <- callbackResult{err: errors.New("state inválido en el callback")}
			return
		}
		if e := c.Query("error"); e != "" {
			c.String(http.StatusBadRequest, "autenticación rechazada")
			done <- callbackResult{err: fmt.Errorf("auth0: %s", e)}
			return
		}
		code := c.Query("code")
		if code == "" {
			c.String(http.StatusBadRequest, "no se recibió el código de autorización")
			done <- callbackResult{err: errors.New("callback sin code")}
			return
		}
		c.String(http.StatusOK, "Sesión iniciada. Ya puedes volver a la aplicación.")
		done <- callbackResult{code: code}
	})

	srv := &http.Server{Addr: addr, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			done <- callbackResult{err: err}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.code, res.err
	}
}
