package handler

import (
	"net/http"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MaquinasHandler struct{ svc service.MaquinaService }

func NewMaquinasHandler(svc service.MaquinaService) *MaquinasHandler {
	return &MaquinasHandler{svc: svc}
}

func (h *MaquinasHandler) Crear(c *gin.Context) {
	var req dto.CrearMaquinaRequest
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

func (h *MaquinasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaquinasHandler) Obtener(c *gin.Context) {
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

func (h *MaquinasHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarMaquinaRequest
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

func (h *MaquinasHandler) Eliminar(c *gin.Context) {
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

// PesadasCostosas lists heavy-category machines having at least one
// maintenance above the cost threshold (?umbral=, default 1000000).
func (h *MaquinasHandler) PesadasCostosas(c *gin.Context) {
	umbral := decimal.NewFromInt(1000000)
	if v := c.Query("umbral"); v != "" {
		parsed, err := decimal.NewFromString(v)
		if err != nil || parsed.IsNegative() {
			c.JSON(http.StatusBadRequest, apierror.New("El parametro umbral debe ser un numero no negativo"))
			return
		}
		umbral = parsed
	}
	resp, err := h.svc.PesadasConMantenimientoCostoso(c.Request.Context(), umbral)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
