package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEngine mounts the same middleware chain the router uses around the
// error paths under test.
func newTestEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.ErrorHandler())
	return r
}

func TestRespondErrorInterno(t *testing.T) {
	r := newTestEngine()
	r.GET("/fallo", func(c *gin.Context) {
		respondError(c, errors.New("db exploded"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fallo", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	// The body must be exactly one JSON envelope, never two concatenated ones
	body := w.Body.Bytes()
	require.True(t, json.Valid(body), "body is not a single valid JSON document: %s", body)

	var env apierror.Envelope
	dec := json.NewDecoder(w.Body)
	require.NoError(t, dec.Decode(&env))
	assert.False(t, dec.More(), "response carries a second JSON document")
	assert.Equal(t, "Error interno del servidor", env.Message)
	// The internal detail stays out of the response
	assert.NotContains(t, string(body), "db exploded")
}

func TestRespondErrorTipado(t *testing.T) {
	r := newTestEngine()
	r.GET("/fallo", func(c *gin.Context) {
		respondError(c, apierror.NotFound("empresa no encontrada"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fallo", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.True(t, json.Valid(w.Body.Bytes()))

	var env apierror.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "empresa no encontrada", env.Message)
}

func TestErrorHandlerNoDuplicaRespuesta(t *testing.T) {
	r := newTestEngine()
	r.GET("/fallo", func(c *gin.Context) {
		// A handler that both records an error and writes its own response
		_ = c.Error(errors.New("detalle interno"))
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fallo", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, json.Valid(w.Body.Bytes()), "middleware appended a second body: %s", w.Body.String())
}
