package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Scheduled Jobs
// ============================================================================

// Log messages for the recurring background jobs
const (
	LogMsgWeatherJobRan       = "Weather regenerated by scheduled job"
	LogMsgWeatherJobFailed    = "Scheduled weather regeneration failed"
	LogMsgBlightJobRan        = "Blight progression job completed"
	LogMsgBlightJobFailed     = "Scheduled blight progression failed"
	LogMsgReminderPublished   = "Deadline reminder published"
	LogMsgReminderCheckFailed = "Deadline reminder check failed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
