package message

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-mtom/pkg/schema"
)

// Wrap builds the version-appropriate SOAP envelope around a body element.
// Header blobs are pre-built XML strings from an external collaborator
// (typically WS-Security); they are merged under the Header element
// unmodified. With no headers the Header element is omitted entirely,
// since some servers reject an empty Header block.
func Wrap(body *etree.Element, op *schema.Operation, headers []string) (*etree.Document, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("body element is required")
	}

	ns := NsSOAP11
	if op.Version == schema.SOAP12 {
		ns = NsSOAP12
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", ns)

	if len(headers) > 0 {
		hdr := env.CreateElement("soap:Header")
		for i, blob := range headers {
			frag := etree.NewDocument()
			if err := frag.ReadFromString(blob); err != nil {
				return nil, fmt.Errorf("header blob %d is not well-formed XML: %w", i, err)
			}
			root := frag.Root()
			if root == nil {
				return nil, fmt.Errorf("header blob %d has no root element", i)
			}
			hdr.AddChild(root.Copy())
		}
	}

	bodyEl := env.CreateElement("soap:Body")
	bodyEl.AddChild(body)

	return doc, nil
}

// EnvelopeBytes serializes a wrapped envelope
func EnvelopeBytes(doc *etree.Document) ([]byte, error) {
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize envelope: %w", err)
	}
	return out, nil
}

// ContentTypeFor returns the wire Content-Type for the envelope itself.
// SOAP 1.2 embeds the action in the Content-Type; SOAP 1.1 carries it as
// a separate SOAPAction transport header instead.
func ContentTypeFor(op *schema.Operation) string {
	if op.Version == schema.SOAP12 {
		if op.SOAPAction != "" {
			return fmt.Sprintf("%s; action=%q", ContentTypeSOAP12, op.SOAPAction)
		}
		return ContentTypeSOAP12
	}
	return ContentTypeSOAP11
}

// TransportHeaders returns the extra transport headers for the operation.
// For SOAP 1.1 this is the quoted SOAPAction header; SOAP 1.2 needs none.
func TransportHeaders(op *schema.Operation) map[string]string {
	headers := make(map[string]string)
	if op.Version == schema.SOAP11 {
		headers["SOAPAction"] = fmt.Sprintf("%q", op.SOAPAction)
	}
	return headers
}
