package search

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/analytics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service    *Service
	normalizer *Normalizer
	events     analytics.Publisher
	logger     *log.Logger
}

func NewHandler(
	service *Service,
	normalizer *Normalizer,
	events analytics.Publisher,
	logger *log.Logger,
) *Handler {
	return &Handler{
		service:    service,
		normalizer: normalizer,
		events:     events,
		logger:     logger,
	}
}

// --------------------------------------------------
// GET /establishments/search
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	raw := RawQuery{
		Latitude:      c.Query("latitude"),
		Longitude:     c.Query("longitude"),
		RadiusKm:      c.Query("radiusKm"),
		MaxDistanceKm: c.Query("maxDistanceKm"),
		City:          c.Query("city"),
		Categories:    c.QueryArray("categories"),
		Cuisines:      c.QueryArray("cuisines"),
		PriceTiers:    c.QueryArray("priceTiers"),
		Features:      c.QueryArray("features"),
		MinRating:     c.Query("minRating"),
		HoursFilter:   c.Query("hoursFilter"),
		Search:        c.Query("search"),
		Sort:          c.Query("sort"),
		Page:          c.Query("page"),
		PageSize:      c.Query("pageSize"),
	}

	req, verr := h.normalizer.Normalize(raw)
	if verr != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": verr.Message,
			"code":  verr.Code,
		})
		return
	}

	started := time.Now()
	result, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.emit(analytics.SearchEvent{
		Query:       req.Text,
		Mode:        req.Mode.String(),
		City:        req.Filters.City,
		ResultCount: result.Total,
		LatencyMs:   time.Since(started).Milliseconds(),
		CreatedAt:   time.Now().UTC(),
	})

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// GET /establishments/within
// --------------------------------------------------
func (h *Handler) Within(c *gin.Context) {
	raw := RawViewport{
		SWLat:       c.Query("swLat"),
		SWLon:       c.Query("swLon"),
		NELat:       c.Query("neLat"),
		NELon:       c.Query("neLon"),
		City:        c.Query("city"),
		Categories:  c.QueryArray("categories"),
		Cuisines:    c.QueryArray("cuisines"),
		PriceTiers:  c.QueryArray("priceTiers"),
		Features:    c.QueryArray("features"),
		MinRating:   c.Query("minRating"),
		HoursFilter: c.Query("hoursFilter"),
		Search:      c.Query("search"),
	}

	req, verr := h.normalizer.NormalizeViewport(raw)
	if verr != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": verr.Message,
			"code":  verr.Code,
		})
		return
	}

	started := time.Now()
	result, err := h.service.Viewport(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.emit(analytics.SearchEvent{
		Query:       req.Text,
		Mode:        req.Mode.String(),
		City:        req.Filters.City,
		ResultCount: result.Count,
		LatencyMs:   time.Since(started).Milliseconds(),
		CreatedAt:   time.Now().UTC(),
	})

	c.JSON(http.StatusOK, result)
}

// fail maps pipeline failures to responses without leaking internals.
func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrDataSource) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	h.logger.Printf("unexpected search failure: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// emit publishes the analytics event without ever blocking or failing
// the response.
func (h *Handler) emit(event analytics.SearchEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := h.events.PublishSearch(ctx, event); err != nil {
			h.logger.Printf("search event publish failed: %v", err)
		}
	}()
}
