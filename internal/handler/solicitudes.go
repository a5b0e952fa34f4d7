package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/apierror"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// SolicitudPDF renders a request summary as a PDF document.
type SolicitudPDF interface {
	Solicitud(resp dto.SolicitudResponse) ([]byte, error)
}

type SolicitudesHandler struct {
	svc service.SolicitudService
	pdf SolicitudPDF
}

func NewSolicitudesHandler(svc service.SolicitudService, pdf SolicitudPDF) *SolicitudesHandler {
	return &SolicitudesHandler{svc: svc, pdf: pdf}
}

func (h *SolicitudesHandler) Crear(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CrearSolicitudRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SolicitudesHandler) Listar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SolicitudesHandler) Obtener(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SolicitudesHandler) Actualizar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarSolicitudRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), p, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CambiarEstado sets the workflow state of a request (admin only).
func (h *SolicitudesHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CambiarEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SolicitudesHandler) Eliminar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), p, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PDF streams a printable summary of the request.
func (h *SolicitudesHandler) PDF(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}
	doc, err := h.pdf.Solicitud(*resp)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=solicitud-%s.pdf", resp.ID))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// TotalPorEmpresa sums the allocated machine quantity for one company (?nombre=).
func (h *SolicitudesHandler) TotalPorEmpresa(c *gin.Context) {
	nombre := c.Query("nombre")
	if nombre == "" {
		c.JSON(http.StatusBadRequest, apierror.New("El parametro nombre es requerido"))
		return
	}
	resp, err := h.svc.TotalPorEmpresa(c.Request.Context(), nombre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorEmpleado lists the requests of the employee with the given document.
func (h *SolicitudesHandler) PorEmpleado(c *gin.Context) {
	documento := c.Param("documento")
	resp, err := h.svc.PorEmpleadoDocumento(c.Request.Context(), documento)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReporteMensual lists the requests of one calendar month
// (?anio= & ?mes=, defaulting to October 2023).
func (h *SolicitudesHandler) ReporteMensual(c *gin.Context) {
	anio := 2023
	mes := 10
	if v := c.Query("anio"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, apierror.New("El parametro anio debe ser un entero positivo"))
			return
		}
		anio = parsed
	}
	if v := c.Query("mes"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("El parametro mes debe ser un entero"))
			return
		}
		mes = parsed
	}
	resp, err := h.svc.ReporteMensual(c.Request.Context(), anio, mes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
