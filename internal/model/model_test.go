package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDateStamp_Format(t *testing.T) {
	got := DateStamp(time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC))
	if got != "2026-08-30" {
		t.Fatalf("got %q", got)
	}
}

func TestDocument_JSONUsesCamelCase(t *testing.T) {
	d := Document{
		ID:        "doc-x",
		ProjectID: "proj-y",
		Name:      "n",
		CreatedAt: "2026-08-30",
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, key := range []string{`"projectId"`, `"createdAt"`} {
		if !strings.Contains(s, key) {
			t.Fatalf("missing %s in %s", key, s)
		}
	}
	// Empty optionals stay off the wire.
	if strings.Contains(s, "updatedAt") {
		t.Fatalf("empty updatedAt serialized: %s", s)
	}
}
