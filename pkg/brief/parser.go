package brief

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	// AttachmentField is the only form field whose file parts become email
	// attachments. It matches the upload field of the brief form; parts under
	// other field names are drained and discarded.
	AttachmentField = "files"

	// MaxBodyBytes caps the whole multipart request body.
	MaxBodyBytes = 50 << 20
	// MaxFileBytes caps a single uploaded file. An oversize file is dropped
	// entirely, never truncated.
	MaxFileBytes = 10 << 20
	// MaxFiles caps how many uploads are retained.
	MaxFiles = 10

	// Field values are small; anything beyond this is not a legitimate form.
	maxFieldBytes = 1 << 20
)

// ErrInvalidRequest marks a submission rejected before any side effect.
var ErrInvalidRequest = errors.New("invalid brief request")

func invalidRequest(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, message)
}

// RequestMessage extracts the human-readable reason from an ErrInvalidRequest.
func RequestMessage(err error) string {
	if rest, ok := strings.CutPrefix(err.Error(), ErrInvalidRequest.Error()+": "); ok {
		return rest
	}
	return err.Error()
}

// FormFile is a retained upload.
type FormFile struct {
	Fieldname   string
	Filename    string
	ContentType string
	Data        []byte
}

// ParsedForm is the outcome of streaming a multipart submission under the
// package limits.
type ParsedForm struct {
	Fields map[string]string
	Files  []FormFile
}

// ParseForm streams a multipart/form-data request into fields and retained
// files. Excess and oversize file parts are fully drained so the connection
// stays usable, but their bytes are discarded.
func ParseForm(r *http.Request) (*ParsedForm, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return nil, invalidRequest("Expected multipart/form-data request.")
	}
	if r.ContentLength > MaxBodyBytes {
		return nil, invalidRequest("Request body too large.")
	}
	r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)

	reader, err := r.MultipartReader()
	if err != nil {
		return nil, invalidRequest("Malformed multipart request.")
	}

	form := &ParsedForm{Fields: map[string]string{}}
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(err)
		}

		if part.FileName() == "" {
			value, err := readField(part)
			if err != nil {
				return nil, err
			}
			form.Fields[part.FormName()] = value
			continue
		}

		file, err := readFile(part, len(form.Files))
		if err != nil {
			return nil, err
		}
		if file != nil {
			form.Files = append(form.Files, *file)
		}
	}

	return form, nil
}

// readError distinguishes the body cap tripping mid-stream from a broken
// multipart encoding.
func readError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return invalidRequest("Request body too large.")
	}
	return invalidRequest("Malformed multipart request.")
}

func readField(part *multipart.Part) (string, error) {
	value, err := io.ReadAll(io.LimitReader(part, maxFieldBytes))
	if err != nil {
		return "", readError(err)
	}
	return string(value), nil
}

// readFile returns nil (no error) for parts that must be discarded: wrong
// field name, file count already at the cap, or an oversize payload.
func readFile(part *multipart.Part, retained int) (*FormFile, error) {
	discard := part.FormName() != AttachmentField || retained >= MaxFiles

	if discard {
		if _, err := io.Copy(io.Discard, part); err != nil {
			return nil, readError(err)
		}
		if retained >= MaxFiles {
			log.Warnf("dropping upload %q: file limit of %d reached", part.FileName(), MaxFiles)
		}
		return nil, nil
	}

	data, err := io.ReadAll(io.LimitReader(part, MaxFileBytes+1))
	if err != nil {
		return nil, readError(err)
	}
	if len(data) > MaxFileBytes {
		// Never keep a truncated file: drain the remainder and drop it all.
		if _, err := io.Copy(io.Discard, part); err != nil {
			return nil, readError(err)
		}
		log.Warnf("dropping upload %q: exceeds %d bytes", part.FileName(), MaxFileBytes)
		return nil, nil
	}

	return &FormFile{
		Fieldname:   part.FormName(),
		Filename:    part.FileName(),
		ContentType: part.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// requiredFields are the mandatory string fields of a brief submission.
var requiredFields = []string{"name", "email", "brief"}

// Validate checks the mandatory fields, naming every missing one.
func (f *ParsedForm) Validate() error {
	var missing []string
	for _, name := range requiredFields {
		if f.Fields[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return invalidRequest(fmt.Sprintf("Missing required fields: %s.", strings.Join(missing, ", ")))
	}
	return nil
}
