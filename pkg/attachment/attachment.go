package attachment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sirosfoundation/go-mtom/pkg/param"
)

// TransferEncoding is the MIME Content-Transfer-Encoding of a part
type TransferEncoding string

const (
	// EncodingBinary ships the bytes unencoded
	EncodingBinary TransferEncoding = "binary"
	// EncodingBase64 encodes the bytes as base64 with 76-column lines
	EncodingBase64 TransferEncoding = "base64"
	// EncodingQuotedPrintable encodes the bytes as quoted-printable
	EncodingQuotedPrintable TransferEncoding = "quoted-printable"
)

// Attachment is one binary part of a message: content bytes plus the
// metadata needed to frame it on the wire. Immutable once constructed;
// attachments live only for the duration of one build or parse call.
type Attachment struct {
	contentID        string
	contentType      string
	transferEncoding TransferEncoding
	data             []byte
}

// Option configures attachment construction
type Option func(*options)

type options struct {
	cfg            Config
	contentID      string
	encoding       TransferEncoding
	skipValidation bool
}

// WithContentID sets an explicit content-id instead of generating one
func WithContentID(id string) Option {
	return func(o *options) { o.contentID = id }
}

// WithTransferEncoding overrides the default binary transfer encoding
func WithTransferEncoding(enc TransferEncoding) Option {
	return func(o *options) { o.encoding = enc }
}

// WithConfig applies limits from cfg instead of the defaults
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithoutValidation skips construction-time validation. For advanced
// callers that validate separately.
func WithoutValidation() Option {
	return func(o *options) { o.skipValidation = true }
}

// New constructs an Attachment and validates it. When no content-id is
// supplied one is generated as "<random>@<host-tag>".
func New(data []byte, contentType string, opts ...Option) (*Attachment, error) {
	o := options{cfg: DefaultConfig(), encoding: EncodingBinary}
	for _, opt := range opts {
		opt(&o)
	}

	contentID := o.contentID
	if contentID == "" {
		contentID = fmt.Sprintf("%s@%s", uuid.New().String(), o.cfg.hostTag())
	}

	a := &Attachment{
		contentID:        NormalizeContentID(contentID),
		contentType:      contentType,
		transferEncoding: o.encoding,
		data:             data,
	}

	if !o.skipValidation {
		if err := a.validate(o.cfg); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ContentID returns the bare content-id (no brackets, no cid: prefix)
func (a *Attachment) ContentID() string { return a.contentID }

// ContentType returns the declared MIME type
func (a *Attachment) ContentType() string { return a.contentType }

// TransferEncoding returns the declared Content-Transfer-Encoding
func (a *Attachment) TransferEncoding() TransferEncoding { return a.transferEncoding }

// Data returns the content bytes
func (a *Attachment) Data() []byte { return a.data }

// Size returns the content length in bytes
func (a *Attachment) Size() int64 { return int64(len(a.data)) }

// ContentIDHeader returns the Content-ID header value, "<content-id>"
func (a *Attachment) ContentIDHeader() string {
	return "<" + a.contentID + ">"
}

// CIDReference returns the href form, "cid:content-id"
func (a *Attachment) CIDReference() string {
	return "cid:" + a.contentID
}

// XOPInclude returns the placeholder that stands in for this attachment
// inside the parameter tree
func (a *Attachment) XOPInclude() *param.XOPInclude {
	return &param.XOPInclude{Href: a.CIDReference()}
}

// Validate re-runs the construction-time checks against cfg. Validation
// has no side effects and may be repeated freely.
func (a *Attachment) Validate(cfg Config) error {
	return a.validate(cfg)
}

func (a *Attachment) validate(cfg Config) error {
	var problems []string

	if a.data == nil {
		problems = append(problems, "content bytes are missing")
	}
	if !strings.Contains(a.contentType, "/") {
		problems = append(problems, fmt.Sprintf("content type %q is not a MIME type", a.contentType))
	}
	if max := cfg.maxSize(); int64(len(a.data)) > max {
		problems = append(problems, fmt.Sprintf("size %d exceeds maximum %d", len(a.data), max))
	}
	if a.contentID == "" {
		problems = append(problems, "content-id is empty")
	}
	switch a.transferEncoding {
	case EncodingBinary, EncodingBase64, EncodingQuotedPrintable:
	default:
		problems = append(problems, fmt.Sprintf("unsupported transfer encoding %q", string(a.transferEncoding)))
	}

	if len(problems) > 0 {
		return &ValidationError{ContentID: a.contentID, Problems: problems}
	}
	return nil
}

// ValidationError reports every failed check for one attachment
type ValidationError struct {
	ContentID string
	Problems  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid attachment %q: %s", e.ContentID, strings.Join(e.Problems, "; "))
}

// NormalizeContentID normalizes a Content-ID by removing angle brackets
// and the cid: prefix
func NormalizeContentID(contentID string) string {
	contentID = strings.TrimPrefix(contentID, "cid:")
	contentID = strings.TrimPrefix(contentID, "<")
	contentID = strings.TrimSuffix(contentID, ">")
	return contentID
}

// MatchContentID checks if two Content-IDs match, ignoring formatting
// differences
func MatchContentID(id1, id2 string) bool {
	return NormalizeContentID(id1) == NormalizeContentID(id2)
}
