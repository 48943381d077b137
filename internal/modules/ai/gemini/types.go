package gemini

import (
	"bytes"
	"encoding/base64"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// InlinePayload is a source image embedded in the request body.
type InlinePayload struct {
	MIMEType string
	Data     []byte
}

// GenerateRequest carries one prompt and optional source images for a single
// generateContent call.
type GenerateRequest struct {
	Prompt string
	Images []InlinePayload
}

type generateBody struct {
	Contents []bodyContent `json:"contents"`
}

type bodyContent struct {
	Parts []bodyPart `json:"parts"`
}

type bodyPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *bodyInlineData `json:"inline_data,omitempty"`
}

type bodyInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

func (g *GenerateRequest) BodyContentType() (io.Reader, string, error) {
	parts := []bodyPart{{Text: g.Prompt}}
	for _, img := range g.Images {
		parts = append(parts, bodyPart{
			InlineData: &bodyInlineData{
				MIMEType: img.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(img.Data),
			},
		})
	}
	body := generateBody{Contents: []bodyContent{{Parts: parts}}}
	data, err := jsoniter.Marshal(body)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewBuffer(data), "application/json", nil
}

func (g *GenerateRequest) Path(model string) string {
	return "v1beta/models/" + model + ":generateContent"
}
