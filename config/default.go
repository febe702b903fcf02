// Package config registers every setting with its default and wires viper to the config file and environment.
package config

import "github.com/clipdrop/clipdrop/key"

// Default holds every registered field by key.
var Default = make(map[string]Field)

var fields = []Field{
	{key.ExtractMaxLinks, 10, "Maximum number of links taken from pasted text.\nExtra links are dropped with a warning"},
	{key.ResolveEndpoint, "https://www.tikwm.com/api/", "Metadata API endpoint.\nThe link is sent as the \"url\" query parameter"},
	{key.ResolveAttempts, 3, "Attempts per link before it is marked as failed"},
	{key.ResolveTimeoutMs, 8000, "Deadline for a single metadata request, in milliseconds"},
	{key.ResolveBackoffMs, 1000, "Wait between attempts for the same link, in milliseconds"},
	{key.QueueDelayMs, 300, "Wait between links while resolving, in milliseconds.\nKeeps the run under the API rate limit"},
	{key.DownloadDelayMs, 500, "Wait between files in a batch download, in milliseconds"},
	{key.DownloadPath, "", "Directory downloads are saved to.\nEmpty means the default downloads directory (see \"clipdrop where\")"},
	{key.DownloadPrefix, "tiktok", "Filename prefix for saved videos: {prefix}_{id}.mp4"},
	{key.NetworkFingerprint, false, "Use a browser TLS fingerprint for metadata requests"},
	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},
	{key.TUIItemSpacing, 1, "Blank lines between items in the TUI list"},
	{key.TUIShowURLs, true, "Show source links under list items"},
	{key.LogsWrite, false, "Write logs to the logs directory"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},
	{key.CliColored, true, "Enable colored CLI output"},
	{key.CliVersionCheck, false, "Check for a newer release after help and version output"},
}

func init() {
	for _, f := range fields {
		if _, exists := Default[f.Key]; exists {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
	}
}
