package attachment

import (
	"fmt"

	"github.com/sirosfoundation/go-mtom/pkg/param"
)

// Extractor walks a parameter tree and pulls AttachmentMarker values out
// into a flat attachment list, substituting XOP include placeholders.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor using the given limits
func NewExtractor(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract returns a rewritten copy of v in which every AttachmentMarker
// has been replaced by a *param.XOPInclude, together with the extracted
// attachments in document order. The input tree is never mutated.
//
// Content-ids are assigned in traversal order, so the attachment list
// lines up with the order of xop:Include references in the serialized
// XML. Receivers must still match by content-id.
func (e *Extractor) Extract(v param.Value) (param.Value, []*Attachment, error) {
	var acc []*Attachment
	rewritten, err := e.walk(v, param.Path{}, &acc)
	if err != nil {
		return nil, nil, err
	}
	return rewritten, acc, nil
}

func (e *Extractor) walk(v param.Value, path param.Path, acc *[]*Attachment) (param.Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, param.Errorf(path.String(), "value is nil")

	case param.Scalar:
		return val, nil

	case *param.XOPInclude:
		// Already extracted; pass through untouched
		return val, nil

	case param.List:
		out := make(param.List, len(val))
		for i, item := range val {
			rw, err := e.walk(item, path.Index(i), acc)
			if err != nil {
				return nil, err
			}
			out[i] = rw
		}
		return out, nil

	case *param.Object:
		if val == nil {
			return nil, param.Errorf(path.String(), "object is nil")
		}
		seen := make(map[string]struct{}, len(val.Fields))
		out := &param.Object{Fields: make([]param.Field, len(val.Fields))}
		for i, f := range val.Fields {
			if f.Name == "" {
				return nil, param.Errorf(path.String(), "field %d has an empty name", i)
			}
			if _, dup := seen[f.Name]; dup {
				return nil, param.Errorf(path.Child(f.Name).String(), "duplicate field name")
			}
			seen[f.Name] = struct{}{}

			rw, err := e.walk(f.Value, path.Child(f.Name), acc)
			if err != nil {
				return nil, err
			}
			out.Fields[i] = param.Field{Name: f.Name, Value: rw}
		}
		return out, nil

	case *param.AttachmentMarker:
		att, err := e.extractMarker(val, path)
		if err != nil {
			return nil, err
		}
		*acc = append(*acc, att)
		return att.XOPInclude(), nil

	default:
		return nil, param.Errorf(path.String(), "unsupported value type %T", v)
	}
}

func (e *Extractor) extractMarker(m *param.AttachmentMarker, path param.Path) (*Attachment, error) {
	if m == nil {
		return nil, param.Errorf(path.String(), "attachment marker is nil")
	}
	if m.Data == nil {
		return nil, param.Errorf(path.String(), "attachment marker has no binary payload")
	}
	if m.ContentType == "" {
		return nil, param.Errorf(path.String(), "attachment marker has no content type")
	}

	opts := []Option{WithConfig(e.cfg)}
	if m.ContentID != "" {
		opts = append(opts, WithContentID(m.ContentID))
	}
	if m.TransferEncoding != "" {
		opts = append(opts, WithTransferEncoding(TransferEncoding(m.TransferEncoding)))
	}

	att, err := New(m.Data, m.ContentType, opts...)
	if err != nil {
		// Keep the ValidationError reachable through errors.As while
		// still naming the offending key path.
		return nil, fmt.Errorf("attachment at %s: %w", path.String(), err)
	}
	return att, nil
}
