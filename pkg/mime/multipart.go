// Package mime implements MIME multipart/related packaging for MTOM
package mime

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"

	gomessage "github.com/emersion/go-message"
	"github.com/google/uuid"

	"github.com/sirosfoundation/go-mtom/pkg/attachment"
)

const (
	// ContentTypeMultipartRelated is the MIME type for multipart/related
	ContentTypeMultipartRelated = "multipart/related"
	// ContentTypeXOPXML is the MIME type of the root (envelope) part
	ContentTypeXOPXML = "application/xop+xml"
)

// ErrBoundaryNotFound is returned when the Content-Type header carries no
// boundary parameter
var ErrBoundaryNotFound = errors.New("boundary not found in content type")

// FormatError reports an unparseable multipart body or header. Format
// errors surface on the receive path; the caller decides whether the
// remote peer is non-compliant.
type FormatError struct {
	Reason string
	err    error
}

func (e *FormatError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("malformed MIME message: %s: %v", e.Reason, e.err)
	}
	return fmt.Sprintf("malformed MIME message: %s", e.Reason)
}

func (e *FormatError) Unwrap() error { return e.err }

// Part is one parsed wire unit: its MIME headers and content bytes with
// any transfer encoding already decoded. Header lookup through
// textproto.MIMEHeader is case-insensitive.
type Part struct {
	Headers textproto.MIMEHeader
	Data    []byte
}

// ContentID returns the part's normalized content-id
func (p *Part) ContentID() string {
	return attachment.NormalizeContentID(p.Headers.Get("Content-Id"))
}

// ContentType returns the part's declared content type
func (p *Part) ContentType() string {
	return p.Headers.Get("Content-Type")
}

// Package assembles one envelope plus its attachments into a
// multipart/related message. The boundary is generated fresh per message,
// never reused, so a verbatim collision with part content stays
// vanishingly unlikely.
type Package struct {
	Boundary string
	StartID  string

	envelope    []byte
	rootType    string
	attachments []*attachment.Attachment
}

// PackageOption configures package construction
type PackageOption func(*Package)

// WithRootType sets the type parameter of the root part's Content-Type
// (the envelope's own content type: text/xml for SOAP 1.1,
// application/soap+xml for SOAP 1.2)
func WithRootType(t string) PackageOption {
	return func(p *Package) { p.rootType = t }
}

// WithHostTag sets the host tag used in the generated start content-id
func WithHostTag(tag string) PackageOption {
	return func(p *Package) {
		p.StartID = fmt.Sprintf("<rootpart.%s@%s>", uuid.New().String(), tag)
	}
}

// NewPackage creates a package for the given envelope and attachments
func NewPackage(envelopeXML []byte, atts []*attachment.Attachment, opts ...PackageOption) *Package {
	p := &Package{
		Boundary:    generateBoundary(),
		StartID:     fmt.Sprintf("<rootpart.%s@%s>", uuid.New().String(), attachment.DefaultHostTag),
		envelope:    envelopeXML,
		rootType:    "text/xml",
		attachments: atts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Build emits the multipart/related byte stream and its Content-Type
// header. Part order is [root, attachment1, attachment2, ...], matching
// the order attachments were extracted.
func (p *Package) Build() (string, []byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.SetBoundary(p.Boundary); err != nil {
		return "", nil, fmt.Errorf("failed to set boundary: %w", err)
	}

	rootHeader := textproto.MIMEHeader{}
	rootHeader.Set("Content-Type", fmt.Sprintf("%s; charset=UTF-8; type=%q", ContentTypeXOPXML, p.rootType))
	rootHeader.Set("Content-Transfer-Encoding", "8bit")
	rootHeader.Set("Content-ID", p.StartID)

	rootPart, err := writer.CreatePart(rootHeader)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create root part: %w", err)
	}
	if _, err := rootPart.Write(p.envelope); err != nil {
		return "", nil, fmt.Errorf("failed to write root part: %w", err)
	}

	for _, att := range p.attachments {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", att.ContentType())
		header.Set("Content-Transfer-Encoding", string(att.TransferEncoding()))
		header.Set("Content-ID", att.ContentIDHeader())

		part, err := writer.CreatePart(header)
		if err != nil {
			return "", nil, fmt.Errorf("failed to create part %s: %w", att.ContentID(), err)
		}
		if err := writeEncoded(part, att.Data(), att.TransferEncoding()); err != nil {
			return "", nil, fmt.Errorf("failed to write part %s: %w", att.ContentID(), err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	contentType := mime.FormatMediaType(ContentTypeMultipartRelated, map[string]string{
		"boundary": p.Boundary,
		"type":     ContentTypeXOPXML,
		"start":    p.StartID,
	})

	return contentType, buf.Bytes(), nil
}

// Parse splits a multipart/related body back into the root (envelope)
// bytes and the attachment parts in original order. The root part is the
// one whose Content-Type mentions xop+xml or text/xml; when none does,
// the first part is taken.
func Parse(contentType string, body []byte) ([]byte, []Part, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, nil, &FormatError{Reason: "unparseable content type", err: err}
	}

	boundary := params["boundary"]
	if boundary == "" {
		return nil, nil, &FormatError{Reason: "missing boundary parameter", err: ErrBoundaryNotFound}
	}

	reader := multipart.NewReader(bytes.NewReader(body), boundary)

	var parts []Part
	for {
		part, err := reader.NextRawPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, &FormatError{Reason: "failed to read part", err: err}
		}

		raw, err := io.ReadAll(part)
		if err != nil {
			return nil, nil, &FormatError{Reason: "failed to read part content", err: err}
		}

		data, err := decodeTransferEncoding(raw, part.Header)
		if err != nil {
			return nil, nil, &FormatError{Reason: "failed to decode part content", err: err}
		}

		parts = append(parts, Part{Headers: part.Header, Data: data})
	}

	if len(parts) == 0 {
		return nil, nil, &FormatError{Reason: "no parts found for boundary " + boundary}
	}

	rootIdx := 0
	for i := range parts {
		ct := strings.ToLower(parts[i].ContentType())
		if strings.Contains(ct, "xop+xml") || strings.Contains(ct, "text/xml") {
			rootIdx = i
			break
		}
	}

	root := parts[rootIdx].Data
	rest := make([]Part, 0, len(parts)-1)
	rest = append(rest, parts[:rootIdx]...)
	rest = append(rest, parts[rootIdx+1:]...)

	return root, rest, nil
}

// writeEncoded applies the declared transfer encoding while writing
func writeEncoded(w io.Writer, data []byte, enc attachment.TransferEncoding) error {
	switch enc {
	case attachment.EncodingBase64:
		return writeBase64(w, data)
	case attachment.EncodingQuotedPrintable:
		qp := quotedprintable.NewWriter(w)
		if _, err := qp.Write(data); err != nil {
			return err
		}
		return qp.Close()
	default:
		_, err := w.Write(data)
		return err
	}
}

// writeBase64 writes base64 content wrapped at 76 columns per RFC 2045
func writeBase64(w io.Writer, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	const lineLen = 76
	for len(encoded) > 0 {
		n := lineLen
		if n > len(encoded) {
			n = len(encoded)
		}
		if _, err := io.WriteString(w, encoded[:n]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}

// decodeTransferEncoding reverses the part's Content-Transfer-Encoding.
// Binary and 8bit content passes through untouched; base64 and
// quoted-printable decode through go-message.
func decodeTransferEncoding(raw []byte, header textproto.MIMEHeader) ([]byte, error) {
	enc := strings.ToLower(strings.TrimSpace(header.Get("Content-Transfer-Encoding")))
	switch enc {
	case "", "binary", "8bit", "7bit":
		return raw, nil
	}

	var h gomessage.Header
	h.Set("Content-Type", "application/octet-stream")
	h.Set("Content-Transfer-Encoding", enc)

	entity, err := gomessage.New(h, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unsupported transfer encoding %q: %w", enc, err)
	}
	data, err := io.ReadAll(entity.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s content: %w", enc, err)
	}
	return data, nil
}

// generateBoundary generates a fresh MIME boundary string
func generateBoundary() string {
	return "uuid:" + uuid.New().String()
}
