package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seoatlas/seoatlas/internal/ids"
	"github.com/seoatlas/seoatlas/internal/projects"
)

type projectOut struct {
	ID string `json:"id"`
	projects.Project
}

func newProjectOut(p *projects.Project) projectOut {
	return projectOut{ID: ids.Hex(p.ID), Project: *p}
}

// RegisterProjectRoutes registers the project CRUD endpoints. client_id and
// website_id are accepted as-is; their referents are not checked.
func RegisterProjectRoutes(r *gin.Engine, repo projects.Repository) {
	g := r.Group("/projects")

	g.POST("/create", func(c *gin.Context) {
		var in projects.Project
		if err := c.ShouldBindJSON(&in); err != nil {
			abortBadRequest(c, err)
			return
		}
		created, err := repo.Create(c.Request.Context(), &in)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newProjectOut(created))
	})

	g.GET("/", func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		out := make([]projectOut, 0, len(list))
		for i := range list {
			out = append(out, newProjectOut(&list[i]))
		}
		c.JSON(http.StatusOK, out)
	})

	g.GET("/:id", func(c *gin.Context) {
		got, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newProjectOut(got))
	})

	g.PUT("/:id", func(c *gin.Context) {
		var upd projects.Update
		if err := c.ShouldBindJSON(&upd); err != nil {
			abortBadRequest(c, err)
			return
		}
		updated, err := repo.Update(c.Request.Context(), c.Param("id"), upd)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newProjectOut(updated))
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"detail": "Project deleted"})
	})
}
