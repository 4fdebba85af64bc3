package httpadapter

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/madrury/sudoku-solver/internal/domain"
	"github.com/madrury/sudoku-solver/internal/usecase"
)

type Handler struct {
	UC  *usecase.Service
	Log zerolog.Logger
}

func New(uc *usecase.Service, log zerolog.Logger) *Handler {
	return &Handler{UC: uc, Log: log}
}

// Register mounts the API routes.
func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api/v1")
	v1.POST("/markup", h.handleMarkup)
	v1.POST("/render", h.handleRender)
	v1.GET("/houses/:kind/:index", h.handleHouse)
	v1.GET("/fetch", h.handleFetch)
	e.GET("/healthz", h.handleHealth)
}

// RequestLogger logs method, path, status, bytes and duration per request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	}
}

type boardReq struct {
	Digits string `json:"puzzle" binding:"required"`
	Mask   string `json:"mask" binding:"required"`
}

func (h *Handler) parseBoard(c *gin.Context) (*domain.Board, bool) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return nil, false
	}
	b, err := h.UC.Parse(req.Digits, req.Mask)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return b, true
}

// statusFor maps domain error types onto HTTP statuses: malformed input is
// the caller's fault, a contradiction is a valid request with an unsolvable
// board.
func statusFor(err error) int {
	var shape *domain.ShapeError
	var rng *domain.OutOfRangeError
	var contra *domain.ContradictionError
	switch {
	case errors.As(err, &shape), errors.As(err, &rng):
		return http.StatusBadRequest
	case errors.As(err, &contra):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type markupResp struct {
	Marks [9][9][]uint8 `json:"marks"`
	Moves []domain.Move `json:"moves"`
}

func (h *Handler) handleMarkup(c *gin.Context) {
	b, ok := h.parseBoard(c)
	if !ok {
		return
	}
	m := h.UC.Markup(b)
	var resp markupResp
	for i := 1; i <= 9; i++ {
		for j := 1; j <= 9; j++ {
			s, _ := m.Marks(domain.Cell{Row: i, Col: j})
			resp.Marks[i-1][j-1] = s.Digits()
		}
	}
	resp.Moves = m.FoundMoves()
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleRender(c *gin.Context) {
	b, ok := h.parseBoard(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, h.UC.Render(b))
}

// handleHouse lists the canonical cell order of one house. Kinds are "row",
// "column" and "square"; the index is 1..9, with squares numbered row-major
// so index n is the box ((n-1)/3+1, (n-1)%3+1).
func (h *Handler) handleHouse(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 1 || idx > 9 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be in 1..9"})
		return
	}
	var house domain.House
	switch c.Param("kind") {
	case "row":
		house = domain.RowHouse(idx)
	case "column":
		house = domain.ColumnHouse(idx)
	case "square":
		house = domain.SquareHouse((idx-1)/3+1, (idx-1)%3+1)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be row, column or square"})
		return
	}
	cells := house.Cells()
	c.JSON(http.StatusOK, gin.H{"house": house.String(), "cells": cells[:]})
}

func (h *Handler) handleFetch(c *gin.Context) {
	level := 1
	if v := c.Query("level"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 4 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "level must be in 1..4"})
			return
		}
		level = n
	}
	p, err := h.UC.Fetch(c.Request.Context(), level)
	if err != nil {
		h.Log.Error().Err(err).Int("level", level).Msg("fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
