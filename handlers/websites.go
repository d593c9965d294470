package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seoatlas/seoatlas/internal/ids"
	"github.com/seoatlas/seoatlas/internal/websites"
)

type websiteOut struct {
	ID string `json:"id"`
	websites.Website
}

func newWebsiteOut(w *websites.Website) websiteOut {
	return websiteOut{ID: ids.Hex(w.ID), Website: *w}
}

// RegisterWebsiteRoutes registers the website CRUD endpoints.
func RegisterWebsiteRoutes(r *gin.Engine, repo websites.Repository) {
	g := r.Group("/websites")

	g.POST("/create", func(c *gin.Context) {
		var in websites.Website
		if err := c.ShouldBindJSON(&in); err != nil {
			abortBadRequest(c, err)
			return
		}
		created, err := repo.Create(c.Request.Context(), &in)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newWebsiteOut(created))
	})

	g.GET("/", func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		out := make([]websiteOut, 0, len(list))
		for i := range list {
			out = append(out, newWebsiteOut(&list[i]))
		}
		c.JSON(http.StatusOK, out)
	})

	g.GET("/:id", func(c *gin.Context) {
		got, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newWebsiteOut(got))
	})

	g.PUT("/:id", func(c *gin.Context) {
		var upd websites.Update
		if err := c.ShouldBindJSON(&upd); err != nil {
			abortBadRequest(c, err)
			return
		}
		updated, err := repo.Update(c.Request.Context(), c.Param("id"), upd)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newWebsiteOut(updated))
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"detail": "Website deleted"})
	})
}
