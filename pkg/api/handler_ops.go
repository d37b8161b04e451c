package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// reportsCatalog handles GET /api/ops/reports/catalog.
func (s *Server) reportsCatalog(c *gin.Context) {
	if s.reporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reporter unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": s.reporter.Catalog()})
}

// reportLatest handles GET /api/ops/reports/latest/:id.
func (s *Server) reportLatest(c *gin.Context) {
	if s.reporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reporter unavailable"})
		return
	}
	rep, ok := s.reporter.Latest(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown report kind"})
		return
	}
	c.JSON(http.StatusOK, rep)
}

// listAlerts handles GET /api/ops/alerts. ?all=true includes acked ones.
func (s *Server) listAlerts(c *gin.Context) {
	if s.alerts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert manager unavailable"})
		return
	}
	includeAcked, _ := strconv.ParseBool(c.Query("all"))
	c.JSON(http.StatusOK, gin.H{"alerts": s.alerts.List(includeAcked)})
}

// ackAlert handles POST /api/ops/alerts/:code/ack.
func (s *Server) ackAlert(c *gin.Context) {
	s.setAlertAck(c, true)
}

// unackAlert handles POST /api/ops/alerts/:code/unack.
func (s *Server) unackAlert(c *gin.Context) {
	s.setAlertAck(c, false)
}

func (s *Server) setAlertAck(c *gin.Context, acked bool) {
	if s.alerts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert manager unavailable"})
		return
	}
	code := c.Param("code")
	var ok bool
	if acked {
		ok = s.alerts.Ack(code)
	} else {
		ok = s.alerts.Unack(code)
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no alert with code " + code})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code, "acked": acked})
}
