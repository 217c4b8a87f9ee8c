package logs

// SystemLog is an audit event for a completed or failed pipeline run.
type SystemLog struct {
	Level   string `json:"level"`
	Service string `json:"service"`
	UserID  string `json:"user_id,omitempty"`
	Action  string `json:"action"`
	Message string `json:"message"`
}

const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)
