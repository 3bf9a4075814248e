package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"validation-service/internal/brdoc"
	"validation-service/internal/http/middleware"
	"validation-service/internal/model"
	"validation-service/internal/service"
)

type Handler struct {
	validationService *service.ValidationService
	log               zerolog.Logger
}

func NewHandler(validationService *service.ValidationService, log zerolog.Logger) *Handler {
	return &Handler{
		validationService: validationService,
		log:               log,
	}
}

// Register mounts the /v1 routes. A nil authMiddleware leaves them public.
func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	v1 := r.Group("/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware)
	}

	cpf := v1.Group("/cpf")
	{
		cpf.POST("/validate", h.validateCPF)
		cpf.POST("/format", h.formatCPF)
	}

	plates := v1.Group("/plates")
	{
		plates.POST("/validate", h.validatePlate)
	}

	v1.POST("/batch/validate", h.validateBatch)
}

type cpfRequest struct {
	CPF *string `json:"cpf" binding:"required"`
}

type plateRequest struct {
	Plate *string `json:"plate" binding:"required"`
}

func (h *Handler) validateCPF(c *gin.Context) {
	var req cpfRequest
	if !h.bindJSON(c, &req) {
		return
	}

	verdict := h.validationService.ValidateCPF(c.Request.Context(), *req.CPF)
	h.logVerdict(c, "cpf", verdict)

	c.JSON(http.StatusOK, successResponse(verdict))
}

func (h *Handler) formatCPF(c *gin.Context) {
	var req cpfRequest
	if !h.bindJSON(c, &req) {
		return
	}

	formatted, err := h.validationService.FormatCPF(c.Request.Context(), *req.CPF)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"formatted": formatted}))
}

func (h *Handler) validatePlate(c *gin.Context) {
	var req plateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	verdict := h.validationService.ValidatePlate(c.Request.Context(), *req.Plate)
	h.logVerdict(c, "plate", verdict)

	c.JSON(http.StatusOK, successResponse(verdict))
}

func (h *Handler) validateBatch(c *gin.Context) {
	var req model.BatchRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.validationService.ValidateBatch(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
		return false
	}

	c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	return false
}

func (h *Handler) logVerdict(c *gin.Context, kind string, verdict model.Verdict) {
	if verdict.Valid {
		return
	}
	event := h.log.Debug().
		Str("request_id", middleware.RequestID(c)).
		Str("kind", kind)
	if principal, ok := middleware.MustPrincipal(c); ok && !principal.IsAnonymous() {
		event = event.Str("user_id", principal.UserID)
	}
	event.
		Str("code", verdict.Code).
		Msg("validation failed")
}

func (h *Handler) handleError(c *gin.Context, err error) {
	if verr, ok := brdoc.AsValidationError(err); ok {
		c.JSON(http.StatusUnprocessableEntity, validationErrorResponse(verr))
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrBatchTooLarge):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Str("request_id", middleware.RequestID(c)).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}

func validationErrorResponse(err *brdoc.ValidationError) gin.H {
	return gin.H{
		"error": err.Message(),
		"code":  err.Code().String(),
	}
}
