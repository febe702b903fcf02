// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Extraction - these keys bound the link extractor.
const (
	ExtractMaxLinks = "extract.max_links"
)

// Metadata Resolution - these keys govern requests to the external metadata API.
const (
	ResolveEndpoint  = "resolve.endpoint"
	ResolveAttempts  = "resolve.attempts"
	ResolveTimeoutMs = "resolve.timeout_ms"
	ResolveBackoffMs = "resolve.backoff_ms"
)

// Queue Pacing - these keys control the spacing between sequential resolutions.
const (
	QueueDelayMs = "queue.delay_ms"
)

// Downloads - these keys configure where and how resolved media is saved.
const (
	DownloadDelayMs = "download.delay_ms"
	DownloadPath    = "download.path"
	DownloadPrefix  = "download.prefix"
)

// Networking - these keys tune the HTTP transport.
const (
	NetworkFingerprint = "network.fingerprint"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's styling.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowURLs    = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
