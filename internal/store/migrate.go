package store

import (
	"encoding/json"

	"annota-cli/internal/model"
)

// Wire shapes for the persisted slots. IDs are kept raw so records
// written by older versions (which used numeric ids) still load.
type wireProject struct {
	ID          json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

type wireDocument struct {
	ID          json.RawMessage `json:"id"`
	ProjectID   json.RawMessage `json:"projectId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Content     string          `json:"content"`
	Author      string          `json:"author"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// normalizeWireID maps a raw persisted id to the canonical string form.
// Legacy numeric ids become their decimal string; absent ids become "".
func normalizeWireID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func decodeProjects(raw []byte) ([]model.Project, error) {
	var wire []wireProject
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}
	out := make([]model.Project, 0, len(wire))
	for _, w := range wire {
		id := normalizeWireID(w.ID)
		if id == "" {
			if fresh, err := newRandomID("proj"); err == nil {
				id = fresh
			}
		}
		out = append(out, model.Project{
			ID:          id,
			Name:        w.Name,
			Description: w.Description,
			CreatedAt:   w.CreatedAt,
			UpdatedAt:   w.UpdatedAt,
		})
	}
	return out, nil
}

// decodeDocuments parses the documents slot and backfills a missing
// projectId with the first loaded project (or a fresh id when there are
// no projects). This keeps legacy orphan records reachable, at the cost
// of silently rewriting data that was inconsistent on disk.
func decodeDocuments(raw []byte, projects []model.Project) ([]model.Document, error) {
	var wire []wireDocument
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}
	fallbackProjectID := func() string {
		if len(projects) > 0 {
			return projects[0].ID
		}
		if fresh, err := newRandomID("proj"); err == nil {
			return fresh
		}
		return "proj-orphan"
	}
	out := make([]model.Document, 0, len(wire))
	for _, w := range wire {
		id := normalizeWireID(w.ID)
		if id == "" {
			if fresh, err := newRandomID("doc"); err == nil {
				id = fresh
			}
		}
		projectID := normalizeWireID(w.ProjectID)
		if projectID == "" {
			projectID = fallbackProjectID()
		}
		out = append(out, model.Document{
			ID:          id,
			ProjectID:   projectID,
			Name:        w.Name,
			Description: w.Description,
			Content:     w.Content,
			Author:      w.Author,
			CreatedAt:   w.CreatedAt,
			UpdatedAt:   w.UpdatedAt,
		})
	}
	return out, nil
}
