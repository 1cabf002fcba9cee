package model

import "strings"

// Class is the closed display classification of a record, derived once from
// the stored MIME type instead of re-parsing it at render time.
type Class string

const (
	ClassFolder       Class = "folder"
	ClassImage        Class = "image"
	ClassDocument     Class = "document"
	ClassVideo        Class = "video"
	ClassAudio        Class = "audio"
	ClassArchive      Class = "archive"
	ClassSpreadsheet  Class = "spreadsheet"
	ClassPresentation Class = "presentation"
	ClassCode         Class = "code"
	ClassOther        Class = "other"
)

// ClassifyMIME maps a record kind plus MIME type to its display class.
// Used only for presentation (icons, grouping), never for business logic.
func ClassifyMIME(kind, mimeType string) Class {
	if kind == KindFolder {
		return ClassFolder
	}
	mt := strings.ToLower(mimeType)
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch {
	case strings.HasPrefix(mt, "image/"):
		return ClassImage
	case strings.HasPrefix(mt, "video/"):
		return ClassVideo
	case strings.HasPrefix(mt, "audio/"):
		return ClassAudio
	}
	switch mt {
	case "application/pdf", "application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/rtf", "text/plain", "text/markdown":
		return ClassDocument
	case "application/zip", "application/gzip", "application/x-tar",
		"application/x-7z-compressed", "application/x-rar-compressed":
		return ClassArchive
	case "application/vnd.ms-excel", "text/csv",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return ClassSpreadsheet
	case "application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation":
		return ClassPresentation
	case "text/html", "text/css", "text/javascript", "application/json",
		"application/xml", "text/x-go", "text/x-python", "text/x-c":
		return ClassCode
	}
	if strings.HasPrefix(mt, "text/") {
		return ClassDocument
	}
	return ClassOther
}
