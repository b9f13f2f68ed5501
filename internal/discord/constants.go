package discord

// Log message constants
const (
	LogMsgAssignmentDMsQueued = "Assignment DMs queued"
	LogMsgAnnounceFailed      = "Failed to post announcement"
)
