package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "rootsbot_http_requests_total"
	MetricNameHTTPRequestDuration  = "rootsbot_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "rootsbot_http_requests_in_flight"

	MetricNameCommandsTotal      = "rootsbot_discord_commands_total"
	MetricNameCommandErrorsTotal = "rootsbot_discord_command_errors_total"
	MetricNameDMsSentTotal       = "rootsbot_dms_sent_total"
	MetricNameDMFailuresTotal    = "rootsbot_dm_failures_total"

	MetricNameMatchRunsTotal        = "rootsbot_santa_match_runs_total"
	MetricNameMatchRunFailuresTotal = "rootsbot_santa_match_run_failures_total"
	MetricNameMatchAttempts         = "rootsbot_santa_match_attempts"
	MetricNameMatchSwapsTotal       = "rootsbot_santa_match_swaps_total"
	MetricNameMatchFallbacksTotal   = "rootsbot_santa_match_fallbacks_total"
	MetricNameMatchUnmatchedTotal   = "rootsbot_santa_match_unmatched_total"

	MetricNameWeatherUpdatesTotal = "rootsbot_weather_updates_total"
	MetricNameBlightTicksTotal    = "rootsbot_blight_ticks_total"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextCommandsTotal      = "Total number of Discord slash commands handled"
	HelpTextCommandErrorsTotal = "Total number of Discord slash commands that failed"
	HelpTextDMsSentTotal       = "Total number of direct messages delivered"
	HelpTextDMFailuresTotal    = "Total number of direct message delivery failures"

	HelpTextMatchRunsTotal        = "Total number of gift exchange matching runs"
	HelpTextMatchRunFailuresTotal = "Total number of matching runs that errored"
	HelpTextMatchAttempts         = "Randomized attempts used per matching run"
	HelpTextMatchSwapsTotal       = "Total swap repairs performed across matching runs"
	HelpTextMatchFallbacksTotal   = "Total constraint-ignoring fallback assignments"
	HelpTextMatchUnmatchedTotal   = "Total participants left unmatched after fallback"

	HelpTextWeatherUpdatesTotal = "Total number of weather regenerations"
	HelpTextBlightTicksTotal    = "Total number of blight progression ticks"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelCommand = "command"
)

// MatchAttemptBuckets covers a 200-attempt budget on a coarse log scale
var MatchAttemptBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 200}

// HTTPLatencyBuckets for the health/metrics server
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}
