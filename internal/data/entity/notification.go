package entity

type NotificationType string

const (
	NotificationHealth NotificationType = "Health"
	NotificationStock  NotificationType = "Stock"
	NotificationSystem NotificationType = "System"
)

type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityWarning  Severity = "Warning"
	SeverityInfo     Severity = "Info"
)

type NotificationMeta struct {
	EntityID   string `json:"entityId"`
	EntityType string `json:"entityType"`
}

// Notification is derived from current table state; it is never stored.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Severity  Severity         `json:"severity"`
	Timestamp string           `json:"timestamp"`
	Link      string           `json:"link,omitempty"`
	Metadata  NotificationMeta `json:"metadata"`
}
