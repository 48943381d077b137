package consts

const (
	GoogleBaseURL    = "https://generativelanguage.googleapis.com"
	CredentialHeader = "x-goog-api-key"
)

const (
	DefaultModel    = "gemini-2.5-flash-image-preview"
	DefaultMIMEType = "image/png"
)

const (
	EventGenerateLoading = iota + 1
	EventGenerateSucceed
	EventGenerateFailed
)
