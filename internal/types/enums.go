package types

// Project publication status (controls public portfolio visibility)
const (
	PublishDraft     = "draft"
	PublishPublished = "published"
)

// Project delivery lifecycle status (client-facing)
const (
	StatusPlanning   = "planning"
	StatusInProgress = "in_progress"
	StatusReview     = "review"
	StatusCompleted  = "completed"
	StatusOnHold     = "on_hold"
)

// Inquiry status values
const (
	InquiryPending   = "pending"
	InquiryResponded = "responded"
)

// Payment status values
const (
	PaymentCompleted = "completed"
)

// Account audiences
const (
	AudienceStaff  = "staff"
	AudienceClient = "client"
)

// Timeline entry types
const (
	TimelineMilestone = "milestone"
	TimelineUpdate    = "update"
	TimelineMeeting   = "meeting"
	TimelineDelivery  = "delivery"
)

// Message sender kinds
const (
	SenderClient = "client"
	SenderTeam   = "team"
)

// Valid lifecycle statuses for validation
var ValidProjectStatuses = []string{
	StatusPlanning, StatusInProgress, StatusReview,
	StatusCompleted, StatusOnHold,
}

// Valid publication statuses for validation
var ValidPublishStatuses = []string{PublishDraft, PublishPublished}

// IsValidProjectStatus checks a lifecycle status value
func IsValidProjectStatus(s string) bool {
	for _, v := range ValidProjectStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidPublishStatus checks a publication status value
func IsValidPublishStatus(s string) bool {
	for _, v := range ValidPublishStatuses {
		if v == s {
			return true
		}
	}
	return false
}
