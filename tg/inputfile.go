package tg

import (
	"bytes"
	"io"
	"strings"
)

// InputFile is a raw-file field value: a reference to a file Telegram
// already knows (file_id or HTTP URL), or content still to be uploaded.
// Use one of the constructors: FileID, FileURL, FromReader, FromBytes.
type InputFile struct {
	// FileID references an existing file on Telegram servers. A decoded
	// "attach://<name>" value is kept here verbatim.
	FileID string

	// URL references a file by HTTP URL (Telegram will download).
	URL string

	// Reader provides file content for upload. It can only be consumed once.
	Reader io.Reader

	// Source returns a fresh reader for each call. When set, it takes
	// priority over Reader.
	Source func() io.Reader

	// FileName is required when Reader or Source is set.
	FileName string
}

// FileID creates an InputFile referencing an existing Telegram file.
func FileID(id string) InputFile {
	return InputFile{FileID: id}
}

// FileURL creates an InputFile from a URL (Telegram will download).
func FileURL(url string) InputFile {
	return InputFile{URL: url}
}

// FromReader creates an InputFile from an io.Reader.
// The reader is streamed directly and can be read only once.
// Use FromBytes when the content has to be read more than once.
func FromReader(r io.Reader, filename string) InputFile {
	return InputFile{
		Reader:   r,
		FileName: filename,
	}
}

// FromBytes creates an InputFile from in-memory bytes.
// Each Open returns a fresh reader.
func FromBytes(data []byte, filename string) InputFile {
	return InputFile{
		Source: func() io.Reader {
			return bytes.NewReader(data)
		},
		FileName: filename,
	}
}

// IsUpload returns true if this InputFile requires upload (has Reader or Source).
func (f InputFile) IsUpload() bool {
	return f.Reader != nil || f.Source != nil
}

// IsEmpty returns true if the InputFile has no value set.
func (f InputFile) IsEmpty() bool {
	return f.FileID == "" && f.URL == "" && f.Reader == nil && f.Source == nil
}

// Name returns the file name sent with an upload.
func (f InputFile) Name() string {
	return f.FileName
}

// Open returns a reader for the file content.
// If Source is set, returns a fresh reader. Otherwise returns Reader directly.
func (f InputFile) Open() (io.Reader, error) {
	if f.Source != nil {
		return f.Source(), nil
	}
	if f.Reader != nil {
		return f.Reader, nil
	}
	return nil, ErrEmptyFile
}

// FileRef returns the wire string of a file_id or URL reference.
// Uploads have no reference.
func (f InputFile) FileRef() (string, bool) {
	if f.IsUpload() {
		return "", false
	}
	if f.FileID != "" {
		return f.FileID, true
	}
	if f.URL != "" {
		return f.URL, true
	}
	return "", false
}

// UnmarshalText reads a reference from the wire: HTTP(S) URLs become URL
// references, everything else a file_id.
func (f *InputFile) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		return ErrEmptyFileRef
	}
	*f = InputFile{}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		f.URL = s
	} else {
		f.FileID = s
	}
	return nil
}

// String returns the reference, or the file name for uploads.
func (f InputFile) String() string {
	if ref, ok := f.FileRef(); ok {
		return ref
	}
	if f.IsUpload() {
		return "upload:" + f.FileName
	}
	return ""
}
