package api

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web
var webFS embed.FS

// registerStaticRoutes serves the bundled single-page search UI.
func registerStaticRoutes(router *gin.Engine) {
	router.GET("/", serveEmbedded("web/index.html", "text/html; charset=utf-8"))
	router.GET("/index.html", serveEmbedded("web/index.html", "text/html; charset=utf-8"))
	router.GET("/index.js", serveEmbedded("web/index.js", "text/javascript; charset=utf-8"))
}

func serveEmbedded(name, contentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := webFS.ReadFile(name)
		if err != nil {
			c.String(http.StatusNotFound, "404")
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}
