package response

import (
	"fmt"
	stdmime "mime"
	"strings"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-mtom/pkg/attachment"
	"github.com/sirosfoundation/go-mtom/pkg/message"
	"github.com/sirosfoundation/go-mtom/pkg/mime"
	"github.com/sirosfoundation/go-mtom/pkg/param"
)

// UnsupportedContentTypeError is returned when a response is neither
// multipart/related nor XML
type UnsupportedContentTypeError struct {
	ContentType string
}

func (e *UnsupportedContentTypeError) Error() string {
	return fmt.Sprintf("unsupported content type %q", e.ContentType)
}

// Result is the reconstructed outcome of one call. A SOAP fault is a
// normal result variant, distinct from success and from transport-level
// errors: when Fault is non-nil the peer processed the message and
// reported a fault.
type Result struct {
	// Operation is the local name of the body's first element (typically
	// "<operation>Response")
	Operation string
	// Value is the reconstructed parameter tree; attachments referenced
	// through xop:Include arrive as *param.AttachmentMarker values with
	// the part's bytes spliced back in
	Value param.Value
	// Fault is set when the body carried a soap Fault
	Fault *message.Fault
}

// IsFault reports whether the peer answered with a SOAP fault
func (r *Result) IsFault() bool { return r.Fault != nil }

// Parse inspects the response Content-Type, routes multipart bodies
// through the MIME packager, and rehydrates XOP include placeholders from
// the attachment parts. A reference that resolves to no part is an error:
// a partially reconstructed message is more dangerous than an explicit
// failure.
func Parse(contentType string, body []byte) (*Result, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))

	switch {
	case strings.HasPrefix(ct, mime.ContentTypeMultipartRelated):
		root, parts, err := mime.Parse(contentType, body)
		if err != nil {
			return nil, err
		}
		return parseEnvelope(root, parts)

	case strings.HasPrefix(ct, "text/xml"),
		strings.HasPrefix(ct, "application/soap+xml"),
		strings.HasPrefix(ct, "application/xml"),
		strings.HasPrefix(ct, "application/xop+xml"):
		return parseEnvelope(body, nil)

	default:
		return nil, &UnsupportedContentTypeError{ContentType: contentType}
	}
}

// parseEnvelope parses the envelope XML and converts the body into a
// parameter tree, resolving xop:Include references against parts
func parseEnvelope(envelopeXML []byte, parts []mime.Part) (*Result, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(envelopeXML); err != nil {
		return nil, fmt.Errorf("invalid envelope XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty envelope document")
	}
	if root.Tag != "Envelope" {
		return nil, fmt.Errorf("root element must be Envelope, got %s", root.Tag)
	}

	bodyEl := childElement(root, "Body")
	if bodyEl == nil {
		return nil, fmt.Errorf("envelope has no Body element")
	}

	if faultEl := childElement(bodyEl, "Fault"); faultEl != nil {
		return &Result{Fault: parseFault(faultEl)}, nil
	}

	children := bodyEl.ChildElements()
	if len(children) == 0 {
		return &Result{Value: param.NewObject()}, nil
	}

	opEl := children[0]
	value, err := elementValue(opEl, parts)
	if err != nil {
		return nil, err
	}

	return &Result{Operation: opEl.Tag, Value: value}, nil
}

// elementValue converts one element into a parameter value. Text-only
// elements become scalars, repeated sibling names fold into lists, and
// xop:Include placeholders are replaced by the referenced part's bytes.
func elementValue(el *etree.Element, parts []mime.Part) (param.Value, error) {
	if inc := childElement(el, "Include"); inc != nil && strings.HasPrefix(inc.SelectAttrValue("href", ""), "cid:") {
		return resolveInclude(inc, parts)
	}

	children := el.ChildElements()
	if len(children) == 0 {
		return param.String(el.Text()), nil
	}

	obj := param.NewObject()
	for _, child := range children {
		value, err := elementValue(child, parts)
		if err != nil {
			return nil, err
		}

		existing := obj.Get(child.Tag)
		switch prev := existing.(type) {
		case nil:
			obj.Set(child.Tag, value)
		case param.List:
			obj.Set(child.Tag, append(prev, value))
		default:
			obj.Set(child.Tag, param.List{prev, value})
		}
	}
	return obj, nil
}

// resolveInclude splices the referenced part's bytes back into the tree
func resolveInclude(inc *etree.Element, parts []mime.Part) (param.Value, error) {
	href := inc.SelectAttrValue("href", "")
	cid := attachment.NormalizeContentID(href)

	for i := range parts {
		if attachment.MatchContentID(parts[i].ContentID(), cid) {
			// The header value may carry parameters; markers hold the
			// bare media type the way callers supply them.
			contentType := parts[i].ContentType()
			if mt, _, err := stdmime.ParseMediaType(contentType); err == nil {
				contentType = mt
			}
			return &param.AttachmentMarker{
				Data:        parts[i].Data,
				ContentType: contentType,
				ContentID:   cid,
			}, nil
		}
	}
	return nil, fmt.Errorf("unresolved XOP reference %s: no part with that content-id", href)
}

// parseFault interprets either fault shape: flat faultcode/faultstring
// (SOAP 1.1) or nested Code/Value and Reason/Text (SOAP 1.2)
func parseFault(faultEl *etree.Element) *message.Fault {
	if codeEl := childElement(faultEl, "faultcode"); codeEl != nil {
		f := &message.Fault{Code: strings.TrimSpace(codeEl.Text())}
		if el := childElement(faultEl, "faultstring"); el != nil {
			f.Reason = strings.TrimSpace(el.Text())
		}
		if el := childElement(faultEl, "faultactor"); el != nil {
			f.Actor = strings.TrimSpace(el.Text())
		}
		if el := childElement(faultEl, "detail"); el != nil {
			f.Detail = strings.TrimSpace(el.Text())
		}
		return f
	}

	f := &message.Fault{}
	if codeEl := childElement(faultEl, "Code"); codeEl != nil {
		if el := childElement(codeEl, "Value"); el != nil {
			f.Code = strings.TrimSpace(el.Text())
		}
	}
	if reasonEl := childElement(faultEl, "Reason"); reasonEl != nil {
		if el := childElement(reasonEl, "Text"); el != nil {
			f.Reason = strings.TrimSpace(el.Text())
		}
	}
	if el := childElement(faultEl, "Role"); el != nil {
		f.Actor = strings.TrimSpace(el.Text())
	}
	if el := childElement(faultEl, "Detail"); el != nil {
		f.Detail = strings.TrimSpace(el.Text())
	}
	return f
}

// childElement finds a direct child by local name, ignoring prefixes
func childElement(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}
