package entities

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Notification is a message shown to an administrator in the admin UI.
type Notification struct {
	Recipient string    `json:"recipient"`
	Title     string    `json:"title"`
	Severity  Severity  `json:"severity"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
