package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nanodraw/nanodraw/internal/service/http/handler"
	"github.com/nanodraw/nanodraw/internal/service/http/middleware"
	"github.com/nanodraw/nanodraw/internal/service/http/web"
)

func Serve(port string) {
	e := gin.New()
	initRouter(e)
	if err := e.Run(port); err != nil {
		panic(err)
	}
}

func initRouter(e *gin.Engine) {
	e.Use(gin.Recovery())
	e.Use(middleware.RequestLogger())

	e.GET("/", func(c *gin.Context) {
		page, err := web.FS.ReadFile("index.html")
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	v1 := e.Group("/v1")
	cred := v1.Group("/credential")
	{
		cred.GET("", handler.GetCredential)
		cred.PUT("", handler.SaveCredential)
	}
	v1.POST("/generate", handler.Generate)
	images := v1.Group("/images")
	{
		images.GET("/:id", handler.GetImage)
		images.DELETE("/:id", handler.ReleaseImage)
	}
	v1.GET("/history", handler.History)
}
