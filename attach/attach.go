package attach

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/prilive-com/tgtypes/schema"
	"github.com/prilive-com/tgtypes/tg"
)

// ErrNoContent is returned for a file value with neither a reference nor
// content to upload.
var ErrNoContent = errors.New("tgtypes: file must have a file_id, URL or content")

// Upload is a file value that can be sent as a multipart part.
// tg.InputFile implements it.
type Upload interface {
	schema.File
	Open() (io.Reader, error)
	Name() string
}

// FilePart is a file to be sent as a multipart part.
type FilePart struct {
	FieldName string    // "photo", "document", "file0", ...
	FileName  string    // e.g. "photo.jpg"
	Reader    io.Reader // file content
}

// Request is a payload split into file parts and string parameters.
type Request struct {
	Files  []FilePart        // parts to attach, in attach:// order
	Params map[string]string // string-encoded parameters
}

// HasUploads returns true if the request contains file uploads.
func (r *Request) HasUploads() bool {
	return len(r.Files) > 0
}

// Encode encodes v with tg.Encode and extracts its uploads.
func Encode(v any) (*Request, error) {
	payload, err := tg.Encode(v)
	if err != nil {
		return nil, err
	}
	return Extract(payload)
}

// Extract splits an encoded payload into file parts and string parameters.
// Keys are processed in sorted order so attach names are stable.
func Extract(payload map[string]any) (*Request, error) {
	b := &builder{req: &Request{
		Files:  make([]FilePart, 0),
		Params: make(map[string]string, len(payload)),
	}}

	for _, name := range sortedKeys(payload) {
		value := payload[name]
		if value == nil {
			continue
		}

		// The file IS the value for top-level fields.
		if f, ok := value.(schema.File); ok {
			if err := b.topLevel(name, f); err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}
			continue
		}

		resolved, err := b.resolve(name, value)
		if err != nil {
			return nil, err
		}
		param, err := formValue(resolved)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		b.req.Params[name] = param
	}
	return b.req, nil
}

type builder struct {
	req       *Request
	attachIdx int
}

func (b *builder) topLevel(name string, f schema.File) error {
	if ref, ok := f.FileRef(); ok {
		b.req.Params[name] = ref
		return nil
	}
	part, err := filePart(name, f)
	if err != nil {
		return err
	}
	b.req.Files = append(b.req.Files, part)
	return nil
}

// resolve replaces nested files with their references or attach:// markers.
func (b *builder) resolve(path string, value any) (any, error) {
	switch v := value.(type) {
	case schema.File:
		if ref, ok := v.FileRef(); ok {
			return ref, nil
		}
		attachName := "file" + strconv.Itoa(b.attachIdx)
		part, err := filePart(attachName, v)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", path, err)
		}
		b.attachIdx++
		b.req.Files = append(b.req.Files, part)
		return "attach://" + attachName, nil

	case map[string]any:
		out := make(map[string]any, len(v))
		for _, k := range sortedKeys(v) {
			item, err := b.resolve(path+"."+k, v[k])
			if err != nil {
				return nil, err
			}
			out[k] = item
		}
		return out, nil

	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			r, err := b.resolve(path+"["+strconv.Itoa(i)+"]", item)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	}
	return value, nil
}

func filePart(fieldName string, f schema.File) (FilePart, error) {
	up, ok := f.(Upload)
	if !ok {
		return FilePart{}, fmt.Errorf("%w: %T cannot be uploaded", ErrNoContent, f)
	}
	r, err := up.Open()
	if err != nil {
		return FilePart{}, fmt.Errorf("%w: %w", ErrNoContent, err)
	}
	return FilePart{FieldName: fieldName, FileName: up.Name(), Reader: r}, nil
}

// formValue renders a parameter as a form field: scalars verbatim, complex
// values as JSON.
func formValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case json.Number:
		return x.String(), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("JSON marshal: %w", err)
	}
	return string(data), nil
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
