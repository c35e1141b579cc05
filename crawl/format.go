package crawl

import "fmt"

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens formats token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}

// FormatProgress renders a progress event as a single status line.
// Returns an empty string for events that have nothing to report.
func FormatProgress(event ProgressEvent, maxURLLen int) string {
	counter := fmt.Sprintf("[%d/%d]", event.Visited, event.MaxPages)
	url := TruncateURL(event.URL, maxURLLen)
	switch event.Type {
	case ProgressCompleted:
		return fmt.Sprintf("%s %s", counter, url)
	case ProgressEmpty:
		return fmt.Sprintf("%s %s (no content)", counter, url)
	case ProgressFailed:
		return fmt.Sprintf("skip %s: %v", event.URL, event.Error)
	case ProgressFinished:
		return fmt.Sprintf("Visited %d of at most %d pages", event.Visited, event.MaxPages)
	default:
		return ""
	}
}
