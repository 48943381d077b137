package request

import (
	"fmt"
	"mime/multipart"
	"strings"
)

type Generate struct {
	Prompt string                `form:"prompt"`
	Image  *multipart.FileHeader `form:"image"` // optional source image
}

func (g *Generate) Valid() error {
	if strings.TrimSpace(g.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	return nil
}

type SaveCredential struct {
	Credential string `json:"credential"`
}
