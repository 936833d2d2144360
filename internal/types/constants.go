package types

import (
	"os"
	"strings"
)

// Task statuses supported by the board.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// Task categories.
const (
	CategoryProblemRecognition  = "problem-recognition"
	CategorySolutionDevelopment = "solution-development"
)

// Problem statement states derived from uploads.
const (
	ProblemStatementPending   = "pending"
	ProblemStatementSubmitted = "submitted"
)

// MaxUploadSize is the upload limit in bytes (10 MiB).
const MaxUploadSize = 10 * 1024 * 1024

// AllowedUploadTypes lists the accepted document MIME types.
var AllowedUploadTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
