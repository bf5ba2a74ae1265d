package event

import "time"

type AssetEventType string

const (
	// AssetEventTypeResumeUploaded is informational: a new resume is live.
	AssetEventTypeResumeUploaded AssetEventType = "resume.uploaded"
	// AssetEventTypeOrphaned asks the worker to retry deleting an object that
	// the API failed to delete inline.
	AssetEventTypeOrphaned AssetEventType = "asset.orphaned"
)

type AssetEventPayload struct {
	EventType  AssetEventType `json:"event_type"`
	PublicID   string         `json:"public_id"`
	URL        string         `json:"url,omitempty"`
	FileName   string         `json:"file_name,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
