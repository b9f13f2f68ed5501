package postgres

// Error Messages - Gift Exchange Operations
const (
	ErrMsgFailedToUpsertParticipant = "failed to upsert participant"
	ErrMsgFailedToGetParticipant    = "failed to get participant"
	ErrMsgFailedToListParticipants  = "failed to list participants"
	ErrMsgFailedToDeleteParticipant = "failed to delete participant"
	ErrMsgFailedToGetSettings       = "failed to get exchange settings"
	ErrMsgFailedToSaveSettings      = "failed to save exchange settings"
	ErrMsgFailedToReplaceMatches    = "failed to replace matches"
	ErrMsgFailedToListMatches       = "failed to list matches"
	ErrMsgFailedToGetMatch          = "failed to get match"
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Weather Operations
const (
	ErrMsgFailedToGetWeather  = "failed to get weather"
	ErrMsgFailedToSaveWeather = "failed to save weather"
)

// Error Messages - Blight Operations
const (
	ErrMsgFailedToUpsertBlightRecord = "failed to upsert blight record"
	ErrMsgFailedToGetBlightRecord    = "failed to get blight record"
	ErrMsgFailedToListBlightRecords  = "failed to list blight records"
)
