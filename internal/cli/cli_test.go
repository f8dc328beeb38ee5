package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func decodeData(t *testing.T, out string) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	data, ok := payload["data"]
	if !ok {
		t.Fatalf("output has no data key: %s", out)
	}
	m, ok := data.(map[string]any)
	if !ok {
		t.Fatalf("data is not an object: %s", out)
	}
	return m
}

func TestProjectsCreateThenList(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, dir, "projects", "create", "--name", "From CLI", "--description", "scripted")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	created := decodeData(t, out)
	id, _ := created["id"].(string)
	if !strings.HasPrefix(id, "proj-") {
		t.Fatalf("created project id malformed: %v", created["id"])
	}

	out, _, err = runCLI(t, dir, "projects", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// 3 seeded projects plus the created one.
	var payload struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("list output not JSON: %v", err)
	}
	if got := len(payload.Data); got != 4 {
		t.Fatalf("expected 4 projects, got %d", got)
	}
	if payload.Data[3]["name"] != "From CLI" {
		t.Fatalf("created project not last in list: %v", payload.Data[3]["name"])
	}
}

func TestProjectsDeleteRequiresYes(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runCLI(t, dir, "projects", "delete", "proj-whatever"); err == nil {
		t.Fatalf("delete without --yes should fail")
	}

	out, _, err := runCLI(t, dir, "projects", "create", "--name", "doomed")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := decodeData(t, out)["id"].(string)

	out, _, err = runCLI(t, dir, "projects", "delete", id, "--yes")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if decodeData(t, out)["deleted"] != true {
		t.Fatalf("delete did not report success: %s", out)
	}
}

func TestDocsImportAndShow(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, dir, "projects", "create", "--name", "import target")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	pid := decodeData(t, out)["id"].(string)

	src := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(src, []byte("imported body"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	out, _, err = runCLI(t, dir, "docs", "import", "--project", pid, src)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	imported, ok := decodeData(t, out)["imported"].([]any)
	if !ok || len(imported) != 1 {
		t.Fatalf("expected 1 imported id, got %s", out)
	}
	docID := imported[0].(string)

	out, _, err = runCLI(t, dir, "docs", "show", docID)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	doc := decodeData(t, out)
	if doc["name"] != "note.txt" || doc["content"] != "imported body" {
		t.Fatalf("imported document mismatch: %s", out)
	}
	if doc["projectId"] != pid {
		t.Fatalf("imported document in wrong project: %v", doc["projectId"])
	}
}

func TestDocsImportUnknownProjectFails(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, errOut, err := runCLI(t, dir, "docs", "import", "--project", "proj-nope", src)
	if err == nil {
		t.Fatalf("import into unknown project should fail")
	}
	if !strings.Contains(errOut, "not found") {
		t.Fatalf("expected not-found message, got %q", errOut)
	}
}

func TestDocsCopyDefaultsName(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, dir, "projects", "create", "--name", "p")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	pid := decodeData(t, out)["id"].(string)

	out, _, err = runCLI(t, dir, "docs", "create", "--project", pid, "--name", "orig", "--content", "body", "--author", "kim")
	if err != nil {
		t.Fatalf("create doc: %v", err)
	}
	docID := decodeData(t, out)["id"].(string)

	out, _, err = runCLI(t, dir, "docs", "copy", docID)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	dup := decodeData(t, out)
	if dup["name"] != "orig - copy" {
		t.Fatalf("default copy name mismatch: %v", dup["name"])
	}
	if dup["content"] != "body" || dup["author"] != "kim" {
		t.Fatalf("copy lost fields: %s", out)
	}
	if dup["id"] == docID {
		t.Fatalf("copy reused source id")
	}
}

func TestDocsUpdateOnlyChangedFlags(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, dir, "projects", "create", "--name", "p")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	pid := decodeData(t, out)["id"].(string)

	out, _, err = runCLI(t, dir, "docs", "create", "--project", pid, "--name", "keep", "--content", "keep body")
	if err != nil {
		t.Fatalf("create doc: %v", err)
	}
	docID := decodeData(t, out)["id"].(string)

	out, _, err = runCLI(t, dir, "docs", "update", docID, "--author", "new author")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	doc := decodeData(t, out)
	if doc["author"] != "new author" {
		t.Fatalf("author not updated: %s", out)
	}
	if doc["name"] != "keep" || doc["content"] != "keep body" {
		t.Fatalf("unset flags clobbered fields: %s", out)
	}
}

func TestDocsShowUnknownIDFails(t *testing.T) {
	dir := t.TempDir()
	_, errOut, err := runCLI(t, dir, "docs", "show", "doc-missing")
	if err == nil {
		t.Fatalf("show of unknown id should fail")
	}
	if !strings.Contains(errOut, "document not found: doc-missing") {
		t.Fatalf("unexpected error output: %q", errOut)
	}
}

func TestExportCommandWritesFile(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, dir, "projects", "create", "--name", "exportable")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	pid := decodeData(t, out)["id"].(string)

	dest := filepath.Join(t.TempDir(), "proj.sqlite")
	if _, _, err := runCLI(t, dir, "export", "--project", pid, "--out", dest); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
}

func TestBackupCommandSnapshotsSlots(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runCLI(t, dir, "projects", "create", "--name", "persisted"); err != nil {
		t.Fatalf("create: %v", err)
	}
	out, _, err := runCLI(t, dir, "backup")
	if err != nil {
		t.Fatalf("backup: %v", err)
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("backup output not JSON: %v", err)
	}
	if _, err := os.Stat(filepath.Join(payload["backup"], "projects_v1.json")); err != nil {
		t.Fatalf("backup missing projects slot: %v", err)
	}
}

func TestGuideListsAndRendersTopics(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, dir, "guide")
	if err != nil {
		t.Fatalf("guide: %v", err)
	}
	if !strings.Contains(out, "getting-started") || !strings.Contains(out, "import") {
		t.Fatalf("topic listing incomplete: %q", out)
	}

	out, _, err = runCLI(t, dir, "guide", "import")
	if err != nil {
		t.Fatalf("guide import: %v", err)
	}
	if !strings.Contains(out, "latin-1") {
		t.Fatalf("topic body not rendered: %q", out)
	}

	if _, _, err := runCLI(t, dir, "guide", "nope"); err == nil {
		t.Fatalf("unknown topic should fail")
	}
}
