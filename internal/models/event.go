package models

// Place event types published to Kafka.
const (
	EventPlaceCreated  = "place.created"
	EventPlaceUpdated  = "place.updated"
	EventPlaceDeleted  = "place.deleted"
	EventReviewCreated = "review.created"
)

// PlaceEvent describes a mutation of a place or its reviews.
type PlaceEvent struct {
	EventID   string `json:"event_id"`            // EventID is a unique identifier of the event.
	Type      string `json:"type"`                // Type is one of the Event* constants.
	PlaceID   int64  `json:"place_id"`            // PlaceID is the affected place.
	UserID    int64  `json:"user_id"`             // UserID is the user who performed the change.
	ReviewID  *int64 `json:"review_id,omitempty"` // ReviewID is set for review events.
	Rating    *int   `json:"rating,omitempty"`    // Rating is set for review events.
	Timestamp int64  `json:"timestamp"`           // Timestamp is the Unix time (seconds) of the change.
}
