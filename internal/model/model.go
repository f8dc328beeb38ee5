package model

import "time"

// Project is a top-level container for documents.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Document is a unit of annotatable text owned by one project.
//
// ProjectID is a plain reference, not a foreign key: deleting a project
// leaves its documents in place (they just stop being reachable from the
// project list).
type Document struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	Author      string `json:"author,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// DateStamp formats t as the store's date representation (YYYY-MM-DD).
// Entity timestamps are day-granular; the persisted format must stay
// stable across versions.
func DateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}

// Today returns the current date stamp in local time.
func Today() string {
	return DateStamp(time.Now())
}
