package handler

import (
	"github.com/casao/gin-paginate/internal/service"
	"github.com/gin-gonic/gin"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, repo Pinger, articleSvc service.ArticleService) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		NewArticleHandler(articleSvc).Register(api)
	}
}
