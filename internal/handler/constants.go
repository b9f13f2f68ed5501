package handler

import "time"

// ReadyzPingTimeout bounds the database ping during readiness checks
const ReadyzPingTimeout = 2 * time.Second

// Log message constants
const (
	LogMsgReadinessCheckFailed = "Readiness check failed"
)
