package domain

// StatusKind groups raw statuses that display the same way.
type StatusKind string

const (
	KindPending   StatusKind = "pending"
	KindCompleted StatusKind = "completed"
	KindCancelled StatusKind = "cancelled"
	KindUnknown   StatusKind = "unknown"
)

// RequestAction is an action offered on a request in the admin list.
type RequestAction string

const (
	ActionViewDetails     RequestAction = "view_details"
	ActionCopyReference   RequestAction = "copy_reference"
	ActionDownloadReceipt RequestAction = "download_receipt"
	ActionShare           RequestAction = "share"
	ActionMarkCompleted   RequestAction = "mark_completed"
	ActionCancel          RequestAction = "cancel"
	ActionReportIssue     RequestAction = "report_issue"
)

// StatusProjection is the display-ready form of a request status.
type StatusProjection struct {
	Kind    StatusKind      `json:"kind"`
	Label   string          `json:"label"`
	Color   string          `json:"color"`
	Actions []RequestAction `json:"actions"`
}

// KindOf maps a raw status to its kind, case-insensitively.
func KindOf(status string) StatusKind {
	switch NormalizeStatus(status) {
	case StatusCompleted, StatusSuccess:
		return KindCompleted
	case StatusPending, StatusProcessing:
		return KindPending
	case StatusCancelled, StatusRejected:
		return KindCancelled
	}
	return KindUnknown
}

// Project turns a raw status into its label, color class and allowed actions.
// Unknown statuses pass through with their original text and a neutral color.
func Project(status string, lang Language) StatusProjection {
	actions := []RequestAction{ActionViewDetails, ActionCopyReference, ActionDownloadReceipt, ActionShare}
	normalized := string(NormalizeStatus(status))

	switch kind := KindOf(status); kind {
	case KindCompleted:
		return StatusProjection{Kind: kind, Label: T(lang, "completed"), Color: "green", Actions: actions}
	case KindPending:
		return StatusProjection{
			Kind:    kind,
			Label:   T(lang, normalized),
			Color:   "yellow",
			Actions: append(actions, ActionMarkCompleted, ActionCancel),
		}
	case KindCancelled:
		return StatusProjection{
			Kind:    kind,
			Label:   T(lang, normalized),
			Color:   "red",
			Actions: append(actions, ActionReportIssue),
		}
	default:
		return StatusProjection{Kind: KindUnknown, Label: status, Color: "blue", Actions: actions}
	}
}
