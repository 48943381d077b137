package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/nanodraw/nanodraw/internal/modules/display"
	"github.com/nanodraw/nanodraw/internal/modules/logs"
	"github.com/nanodraw/nanodraw/internal/service/http/handler/response"
	"github.com/nanodraw/nanodraw/tools"
)

const thumbnailRatio = 0.25

func GetImage(c *gin.Context) {
	id := c.Param("id")
	payload, ok := display.GeneratedSlot.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFoundError)
		return
	}
	data := payload.Data
	if c.Query("thumbnail") == "1" {
		format, err := imaging.FormatFromExtension(extensionForMIME(payload.MIMEType))
		if err != nil {
			format = imaging.PNG
		}
		thumb, err := tools.Thumbnail(bytes.NewReader(data), thumbnailRatio, format)
		if err != nil {
			logs.Logger.Err(err).Str("handle", id).Msg("thumbnail")
			c.JSON(http.StatusInternalServerError, response.InternalError)
			return
		}
		data, err = io.ReadAll(thumb)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.InternalError)
			return
		}
	}
	if c.Query("download") == "1" {
		filename := fmt.Sprintf("nanodraw-%s%s", id, extensionForMIME(payload.MIMEType))
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	c.Data(http.StatusOK, payload.MIMEType, data)
}

func ReleaseImage(c *gin.Context) {
	id := c.Param("id")
	if display.GeneratedSlot.Current() != id {
		c.JSON(http.StatusNotFound, response.NotFoundError)
		return
	}
	display.GeneratedSlot.Release()
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{"released": true}))
}

func extensionForMIME(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
