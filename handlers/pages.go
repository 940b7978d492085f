package handlers

import "github.com/gin-gonic/gin"

// Landing serves the static landing page.
func Landing(c *gin.Context) {
	c.File("./views/index.html")
}
