package importer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"annota-cli/internal/logging"
	"annota-cli/internal/model"
	"annota-cli/internal/store"
)

// File is one user-supplied blob headed for the store. Data is nil when
// the file could not be read; the pipeline absorbs that as empty
// content rather than failing the batch.
type File struct {
	Name string
	Data []byte
}

type Importer struct {
	Store store.Store
	Log   *zap.Logger
}

func New(s store.Store, log *zap.Logger) Importer {
	if log == nil {
		log = logging.Nop()
	}
	return Importer{Store: s, Log: log}
}

// ReadFiles loads the given paths into memory. A path that cannot be
// read still yields a File (with nil Data) so the batch keeps its shape
// and order.
func (imp Importer) ReadFiles(paths []string) []File {
	files := make([]File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			imp.Log.Warn("import file unreadable; content will be empty", zap.String("path", p), zap.Error(err))
			data = nil
		}
		files = append(files, File{Name: filepath.Base(p), Data: data})
	}
	return files
}

// Import converts a batch of files into new documents under projectID.
//
// Every file is decoded concurrently; results are only observed once
// the whole batch has settled. Per-file decode failures are absorbed as
// empty content. The decoded batch is appended through a single store
// mutation, so either all documents land or none do. Returned ids are
// in input order.
func (imp Importer) Import(ctx context.Context, db *store.DB, files []File, projectID string) []string {
	if len(files) == 0 {
		return []string{}
	}
	if err := ctx.Err(); err != nil {
		imp.Log.Error("import aborted before decoding; nothing committed", zap.Error(err))
		return []string{}
	}

	texts := make([]string, len(files))
	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			texts[i] = decodeText(files[i].Data)
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		imp.Log.Error("import aborted after decoding; nothing committed", zap.Error(err))
		return []string{}
	}

	today := model.Today()
	docs := make([]model.Document, 0, len(files))
	ids := make([]string, 0, len(files))
	batch := make(map[string]bool, len(files))
	for i, f := range files {
		id := imp.Store.NextID(db, "doc")
		for batch[id] {
			id = imp.Store.NextID(db, "doc")
		}
		batch[id] = true
		docs = append(docs, model.Document{
			ID:        id,
			ProjectID: projectID,
			Name:      f.Name,
			Content:   texts[i],
			CreatedAt: today,
			UpdatedAt: today,
		})
		ids = append(ids, id)
		imp.Log.Info("import decoded file", zap.String("doc", id), zap.String("name", f.Name), zap.Int("contentLen", len(texts[i])))
	}

	imp.Store.AppendDocuments(db, docs)
	return ids
}

// decodeText attempts UTF-8 first, then BOM-sniffed UTF-16, then
// latin-1. Each step is a silent fallback; a nil blob decodes to "".
func decodeText(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}
	if utf8.Valid(data) {
		return string(data)
	}

	if out, ok := decodeUTF16(data); ok {
		return out
	}

	// Latin-1 maps every byte, so this last resort cannot fail; genuinely
	// undecodable input only arises when the file was unreadable upstream.
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return ""
	}
	return string(out)
}

func decodeUTF16(data []byte) (string, bool) {
	var endian unicode.Endianness
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		endian = unicode.LittleEndian
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		endian = unicode.BigEndian
	default:
		return "", false
	}
	dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", false
	}
	return string(out), true
}
