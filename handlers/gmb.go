package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seoatlas/seoatlas/internal/gmb"
	"github.com/seoatlas/seoatlas/internal/ids"
)

type gmbOut struct {
	ID string `json:"id"`
	gmb.Entry
}

func newGmbOut(e *gmb.Entry) gmbOut {
	return gmbOut{ID: ids.Hex(e.ID), Entry: *e}
}

// RegisterGmbRoutes registers the gmb-entry CRUD endpoints.
func RegisterGmbRoutes(r *gin.Engine, repo gmb.Repository) {
	g := r.Group("/gmb")

	g.POST("/create", func(c *gin.Context) {
		var in gmb.Entry
		if err := c.ShouldBindJSON(&in); err != nil {
			abortBadRequest(c, err)
			return
		}
		created, err := repo.Create(c.Request.Context(), &in)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newGmbOut(created))
	})

	g.GET("/", func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		out := make([]gmbOut, 0, len(list))
		for i := range list {
			out = append(out, newGmbOut(&list[i]))
		}
		c.JSON(http.StatusOK, out)
	})

	g.GET("/:id", func(c *gin.Context) {
		got, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newGmbOut(got))
	})

	g.PUT("/:id", func(c *gin.Context) {
		var upd gmb.Update
		if err := c.ShouldBindJSON(&upd); err != nil {
			abortBadRequest(c, err)
			return
		}
		updated, err := repo.Update(c.Request.Context(), c.Param("id"), upd)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newGmbOut(updated))
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"detail": "Gmb deleted"})
	})
}
