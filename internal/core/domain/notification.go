package domain

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// A Notification is a one-way user-visible message emitted after cart
// mutations. The shopper never answers it.
type Notification struct {
	Severity Severity
	Message  string
}
