package model

import "time"

// AlertKind distinguishes a streak crossing its threshold from one growing
// past an already reported length.
type AlertKind string

const (
	AlertNew      AlertKind = "new"
	AlertExtended AlertKind = "extended"
)

// Alert is the record pushed to outputs when a watched streak first reaches
// its rule's threshold or extends beyond the last reported count.
type Alert struct {
	ID     string    `json:"id"`   // delivery id, unique per alert
	Kind   AlertKind `json:"kind"` // new or extended
	Dragon Dragon    `json:"dragon"`
	Latest *Outcome  `json:"latest,omitempty"` // outcome that completed the run
	Text   string    `json:"text,omitempty"`   // human-readable summary, filled by outputs
	Time   time.Time `json:"time"`
}
