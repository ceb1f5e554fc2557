package fixtures

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"mediakit/pdf"
	"mediakit/photo"
)

// ConflictName composes the sync client's conflict-copy file name:
// "photo.jpg" with date "2026-02-19" becomes
// "photo (conflict 2026-02-19).jpg".
func ConflictName(original, date string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(original, ext)
	return fmt.Sprintf("%s (conflict %s)%s", base, date, ext)
}

// photoConflict is a divergent edit of a catalog photo: same subject,
// different gradient, saved under the conflict name.
type photoConflict struct {
	Original string
	Date     string
	From, To color.RGBA
	Pattern  photo.Pattern
}

var photoConflicts = []photoConflict{
	{Original: "paris_01.jpg", Date: "2026-02-19", From: rgb(120, 30, 30), To: rgb(180, 60, 100), Pattern: photo.PatternVertical},
	{Original: "nature_02.jpg", Date: "2026-02-18", From: rgb(120, 30, 20), To: rgb(200, 80, 50), Pattern: photo.PatternRadial},
	{Original: "family_01.jpg", Date: "2026-02-20", From: rgb(100, 150, 200), To: rgb(140, 190, 240), Pattern: photo.PatternDiagonal},
}

// Audio and video fixture parameters. The conflict copies differ audibly
// and visibly from the originals so a reviewer can tell the pair apart.
const (
	recordingName = "recording.wav"
	recordingFreq = 440.0
	conflictFreq  = 523.25
	audioDate     = "2026-02-20"

	clipName     = "clip.mp4"
	clipColor    = "#1E1E96"
	clipConflict = "#961E1E"
	clipDate     = "2026-02-19"

	reportName = "report.pdf"
	reportDate = "2026-02-18"
)

var (
	reportAccent   = pdf.Color{R: 0, G: 0.2, B: 0.6}
	conflictAccent = pdf.Color{R: 0.6, G: 0.1, B: 0}
)

// staleMedia lists clip names from earlier fixture revisions that used
// other container formats. They are removed so a stale checkout does not
// mix formats.
var staleMedia = []string{
	"clip.webm",
	ConflictName("clip.webm", clipDate),
	"clip.avi",
	ConflictName("clip.avi", clipDate),
}

const reportTitle = "Northlake Sync - Quarterly Report"

const reportMarkdown = `# Summary

Quarterly engineering report for the file synchronization platform.
All figures cover the trailing three months.

# Infrastructure

- Storage nodes migrated to the new chunk store
- Median upload latency down 18 percent
- Nightly integrity scans enabled on every replica

# Client Features

- Selective sync for shared folders
- Bandwidth limits configurable per network
- Conflict copies now keep the losing edit next to the winner

# Security

- At-rest encryption keys rotated
- Third-party dependency audit completed
`

const conflictMarkdown = `# Summary

Quarterly engineering report for the file synchronization platform.
All figures cover the trailing three months.

NEW: revised after the planning review.

# Infrastructure

- Storage nodes migrated to the new chunk store
- Median upload latency down 18 percent
- Nightly integrity scans enabled on every replica
- NEW: object storage tiering for cold data

# Client Features

- Selective sync for shared folders
- Bandwidth limits configurable per network
- Conflict copies now keep the losing edit next to the winner

# Web Application

- NEW: in-browser preview for images and PDF documents
- NEW: shared link expiry dates

# Security

- At-rest encryption keys rotated
- Third-party dependency audit completed
`
