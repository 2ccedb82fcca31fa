package metaapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-scaffold/pkg/config"
)

// DefaultColumnsAction is used when the columns endpoint gets no action.
const DefaultColumnsAction = config.ActionList

// Handler serves the metadata endpoints of a Registry.
type Handler struct {
	registry *Registry
	logger   zerolog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger routes request logs to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Handler) { h.logger = logger }
}

// New returns a handler reading from registry.
func New(registry *Registry, opts ...Option) *Handler {
	h := &Handler{registry: registry, logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Register mounts the endpoints on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/meta", h.ListModels)
	r.GET("/meta/:model", h.GetModel)
	r.GET("/meta/:model/columns", h.GetColumns)
}

// Router returns a gin engine with recovery, request logging and the
// endpoints mounted.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())
	h.Register(r)
	return r
}

// ListModels responds with every registered model.
func (h *Handler) ListModels(c *gin.Context) {
	names := h.registry.Names()
	out := make([]modelListItem, 0, len(names))
	for _, name := range names {
		core, ok := h.registry.Lookup(name)
		if !ok {
			continue
		}
		out = append(out, modelListItem{Name: name, Table: core.Model().TableName(), Label: core.Label})
	}
	c.JSON(http.StatusOK, out)
}

// GetModel responds with the actions and links of one model.
func (h *Handler) GetModel(c *gin.Context) {
	core, ok := h.registry.Lookup(c.Param("model"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "model not found"})
		return
	}
	c.JSON(http.StatusOK, DescribeModel(core))
}

// GetColumns responds with the resolved columns of one action.
func (h *Handler) GetColumns(c *gin.Context) {
	core, ok := h.registry.Lookup(c.Param("model"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "model not found"})
		return
	}
	out, ok := DescribeColumns(core, c.DefaultQuery("action", DefaultColumnsAction))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "action not found"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("metaapi: request")
	}
}
