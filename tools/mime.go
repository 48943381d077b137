package tools

import "net/http"

// DetectMIMEType sniffs the content type of raw image bytes.
func DetectMIMEType(data []byte) string {
	return http.DetectContentType(data)
}
