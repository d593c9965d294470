package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seoatlas/seoatlas/internal/clients"
	"github.com/seoatlas/seoatlas/internal/ids"
)

// clientOut is the external shape of a client: the stored fields plus the
// hex identifier under "id".
type clientOut struct {
	ID string `json:"id"`
	clients.Client
}

func newClientOut(c *clients.Client) clientOut {
	return clientOut{ID: ids.Hex(c.ID), Client: *c}
}

// RegisterClientRoutes registers the client CRUD endpoints.
func RegisterClientRoutes(r *gin.Engine, repo clients.Repository) {
	g := r.Group("/clients")

	g.POST("/create", func(c *gin.Context) {
		var in clients.Client
		if err := c.ShouldBindJSON(&in); err != nil {
			abortBadRequest(c, err)
			return
		}
		created, err := repo.Create(c.Request.Context(), &in)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newClientOut(created))
	})

	g.GET("/", func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		out := make([]clientOut, 0, len(list))
		for i := range list {
			out = append(out, newClientOut(&list[i]))
		}
		c.JSON(http.StatusOK, out)
	})

	g.GET("/:id", func(c *gin.Context) {
		got, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newClientOut(got))
	})

	g.PUT("/:id", func(c *gin.Context) {
		var upd clients.Update
		if err := c.ShouldBindJSON(&upd); err != nil {
			abortBadRequest(c, err)
			return
		}
		updated, err := repo.Update(c.Request.Context(), c.Param("id"), upd)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, newClientOut(updated))
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"detail": "Client deleted"})
	})
}
