package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pavua/krab/pkg/models"
)

// catalogEntry is one backend in the model catalog payload.
type catalogEntry struct {
	BackendID          string              `json:"backend_id"`
	Tier               models.Tier         `json:"tier"`
	Models             []string            `json:"models"`
	CostPer1KTokensUSD float64             `json:"cost_per_1k_tokens_usd"`
	State              models.BackendState `json:"state,omitempty"`
}

// modelCatalog handles GET /api/model/catalog.
func (s *Server) modelCatalog(c *gin.Context) {
	if s.backends == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "backend registry unavailable"})
		return
	}
	var snap models.HealthSnapshot
	if s.health != nil {
		snap = s.health.Snapshot()
	}

	out := make([]catalogEntry, 0, s.backends.Len())
	for _, id := range s.backends.IDs() {
		bc, err := s.backends.Get(id)
		if err != nil {
			continue
		}
		out = append(out, catalogEntry{
			BackendID:          bc.ID,
			Tier:               bc.Tier,
			Models:             bc.Models,
			CostPer1KTokensUSD: bc.CostPer1KTokensUSD,
			State:              snap.Backend(id).State,
		})
	}

	onPaid := false
	if s.tiers != nil {
		onPaid = s.tiers.OnPaid()
	}
	c.JSON(http.StatusOK, gin.H{"backends": out, "cloud_on_paid": onPaid})
}

// modelApplyRequest is the body of POST /api/model/apply.
type modelApplyRequest struct {
	// Action is one of force_local, force_cloud, auto, reset_paid.
	Action string `json:"action" binding:"required"`
	// ChatID scopes force actions to one chat.
	ChatID string `json:"chat_id"`
}

// modelApply handles POST /api/model/apply: routing mode changes and the
// paid-tier reset, mirroring the owner !model command.
func (s *Server) modelApply(c *gin.Context) {
	var req modelApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Action {
	case "force_local", "force_cloud", "auto":
		if s.policies == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "policy store unavailable"})
			return
		}
		if req.ChatID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chat_id required for force actions"})
			return
		}
		mode := map[string]string{"force_local": "local", "force_cloud": "cloud", "auto": "auto"}[req.Action]
		p, err := s.policies.SetField(c.Request.Context(), models.ChatID(req.ChatID), "force_mode", mode)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.logger.Info("force mode applied", "chat_id", req.ChatID, "mode", mode)
		c.JSON(http.StatusOK, gin.H{"chat_id": req.ChatID, "force_mode": p.ForceMode})

	case "reset_paid":
		if s.tiers == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router unavailable"})
			return
		}
		s.tiers.Reset()
		s.logger.Info("paid tier reset via API")
		c.JSON(http.StatusOK, gin.H{"cloud_on_paid": s.tiers.OnPaid()})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be force_local, force_cloud, auto or reset_paid"})
	}
}
