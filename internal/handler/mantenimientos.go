package handler

import (
	"net/http"
	"time"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MantenimientosHandler struct{ svc service.MantenimientoService }

func NewMantenimientosHandler(svc service.MantenimientoService) *MantenimientosHandler {
	return &MantenimientosHandler{svc: svc}
}

func (h *MantenimientosHandler) Crear(c *gin.Context) {
	var req dto.CrearMantenimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MantenimientosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MantenimientosHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MantenimientosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarMantenimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MantenimientosHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MantenimientosHandler) Estadisticas(c *gin.Context) {
	resp, err := h.svc.Estadisticas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Buscar filters work orders by code or name substring (?q=).
func (h *MantenimientosHandler) Buscar(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, apierror.New("El parametro q es requerido"))
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorRangoFechas lists work orders with delivery date inside
// [?desde=, ?hasta=], both in YYYY-MM-DD format.
func (h *MantenimientosHandler) PorRangoFechas(c *gin.Context) {
	desde, err := time.Parse("2006-01-02", c.Query("desde"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("El parametro desde debe tener formato YYYY-MM-DD"))
		return
	}
	hasta, err := time.Parse("2006-01-02", c.Query("hasta"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("El parametro hasta debe tener formato YYYY-MM-DD"))
		return
	}
	if hasta.Before(desde) {
		c.JSON(http.StatusBadRequest, apierror.New("El parametro hasta no puede ser anterior a desde"))
		return
	}
	resp, err := h.svc.PorRangoFechas(c.Request.Context(), desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorCosto lists work orders costing at least ?minimo=.
func (h *MantenimientosHandler) PorCosto(c *gin.Context) {
	min, err := decimal.NewFromString(c.Query("minimo"))
	if err != nil || min.IsNegative() {
		c.JSON(http.StatusBadRequest, apierror.New("El parametro minimo debe ser un numero no negativo"))
		return
	}
	resp, err := h.svc.PorCostoMinimo(c.Request.Context(), min)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
