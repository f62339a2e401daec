package mtom

import (
	"fmt"

	"github.com/sirosfoundation/go-mtom/pkg/attachment"
	"github.com/sirosfoundation/go-mtom/pkg/message"
	"github.com/sirosfoundation/go-mtom/pkg/mime"
	"github.com/sirosfoundation/go-mtom/pkg/param"
	"github.com/sirosfoundation/go-mtom/pkg/response"
	"github.com/sirosfoundation/go-mtom/pkg/schema"
)

// Request is a fully framed request: the Content-Type header, any extra
// transport headers (SOAPAction for SOAP 1.1), and the body bytes. The
// transport that sends it is out of scope here.
type Request struct {
	ContentType string
	Headers     map[string]string
	Body        []byte

	// Attachments is the number of MIME parts beyond the envelope;
	// zero means the body is a bare envelope, not multipart
	Attachments int
}

// BuildRequest runs the full send pipeline: extract attachments from the
// parameter tree, serialize the body per the operation's style/use rules,
// wrap it in a version-appropriate envelope, and package everything as
// multipart/related when attachments are present. Any error prevents
// bytes from being produced; there is no partial output.
func BuildRequest(cfg attachment.Config, op *schema.Operation, params *param.Object, headers []string) (*Request, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	if params == nil {
		params = param.NewObject()
	}

	extractor := attachment.NewExtractor(cfg)
	rewritten, atts, err := extractor.Extract(params)
	if err != nil {
		return nil, err
	}
	rewrittenObj, ok := rewritten.(*param.Object)
	if !ok {
		return nil, fmt.Errorf("parameter tree root must be an object, got %T", rewritten)
	}

	body, err := message.BuildBody(op, rewrittenObj)
	if err != nil {
		return nil, err
	}

	doc, err := message.Wrap(body, op, headers)
	if err != nil {
		return nil, err
	}
	envelopeXML, err := message.EnvelopeBytes(doc)
	if err != nil {
		return nil, err
	}

	if len(atts) == 0 {
		return &Request{
			ContentType: message.ContentTypeFor(op),
			Headers:     message.TransportHeaders(op),
			Body:        envelopeXML,
		}, nil
	}

	hostTag := cfg.HostTag
	if hostTag == "" {
		hostTag = attachment.DefaultHostTag
	}
	pkg := mime.NewPackage(envelopeXML, atts,
		mime.WithRootType(rootTypeFor(op)),
		mime.WithHostTag(hostTag),
	)
	contentType, bodyBytes, err := pkg.Build()
	if err != nil {
		return nil, err
	}

	return &Request{
		ContentType: contentType,
		Headers:     message.TransportHeaders(op),
		Body:        bodyBytes,
		Attachments: len(atts),
	}, nil
}

// ParseResponse reconstructs a structured result from response bytes.
// It is the receive-path mirror of BuildRequest.
func ParseResponse(contentType string, body []byte) (*response.Result, error) {
	return response.Parse(contentType, body)
}

// rootTypeFor returns the type parameter of the multipart root part: the
// content type the envelope would have carried on its own
func rootTypeFor(op *schema.Operation) string {
	if op.Version == schema.SOAP12 {
		return "application/soap+xml"
	}
	return "text/xml"
}

// Per-part framing overhead allowance used by EstimateMessageSize:
// boundary line, part headers and CRLF separators
const (
	partOverhead     = 512
	envelopeOverhead = 1024
	elementOverhead  = 64
)

// EstimateMessageSize returns an upper-bound estimate of the framed
// message size without serializing anything. The estimate is at least
// the sum of all attachment payloads (after transfer-encoding expansion)
// and exceeds the true size by at most a bounded per-part constant.
func EstimateMessageSize(cfg attachment.Config, op *schema.Operation, params *param.Object, headers []string) (int64, error) {
	if err := op.Validate(); err != nil {
		return 0, err
	}

	var size int64 = envelopeOverhead
	for _, blob := range headers {
		size += int64(len(blob))
	}
	if params != nil {
		size += estimateValue(params)
	}
	return size, nil
}

func estimateValue(v param.Value) int64 {
	switch val := v.(type) {
	case param.Scalar:
		return elementOverhead + int64(len(val.Text()))
	case param.List:
		var sum int64
		for _, item := range val {
			sum += estimateValue(item)
		}
		return sum
	case *param.Object:
		var sum int64 = elementOverhead
		if val == nil {
			return sum
		}
		for _, f := range val.Fields {
			sum += int64(len(f.Name)) + estimateValue(f.Value)
		}
		return sum
	case *param.AttachmentMarker:
		if val == nil {
			return partOverhead
		}
		n := int64(len(val.Data))
		if attachment.TransferEncoding(val.TransferEncoding) == attachment.EncodingBase64 {
			// base64 expands 3 bytes to 4, plus line breaks
			n = (n/3+1)*4 + n/76*2
		}
		return partOverhead + n
	case *param.XOPInclude:
		return elementOverhead * 2
	default:
		return elementOverhead
	}
}
