package message

import (
	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-mtom/pkg/schema"
)

// Fault is the version-independent view of a SOAP fault. On the wire the
// two versions differ in shape: SOAP 1.1 uses flat faultcode/faultstring
// children, SOAP 1.2 nests Code/Value and Reason/Text.
type Fault struct {
	// Code is the fault code ("soap:Client", "soap:Receiver", ...)
	Code string
	// Reason is the human-readable fault description
	Reason string
	// Actor identifies the node that produced the fault (1.1 faultactor,
	// 1.2 Role)
	Actor string
	// Detail carries application-specific fault content
	Detail string
}

func (f *Fault) Error() string {
	if f == nil {
		return ""
	}
	return f.Reason
}

// BuildFault constructs the version-correct Fault element for use inside
// a Body. Interpretation of received faults lives in the response package.
func BuildFault(f *Fault, version schema.Version) *etree.Element {
	fault := etree.NewElement("soap:Fault")

	if version == schema.SOAP12 {
		code := fault.CreateElement("soap:Code")
		code.CreateElement("soap:Value").SetText(f.Code)
		reason := fault.CreateElement("soap:Reason")
		text := reason.CreateElement("soap:Text")
		text.CreateAttr("xml:lang", "en")
		text.SetText(f.Reason)
		if f.Actor != "" {
			fault.CreateElement("soap:Role").SetText(f.Actor)
		}
		if f.Detail != "" {
			fault.CreateElement("soap:Detail").SetText(f.Detail)
		}
		return fault
	}

	fault.CreateElement("faultcode").SetText(f.Code)
	fault.CreateElement("faultstring").SetText(f.Reason)
	if f.Actor != "" {
		fault.CreateElement("faultactor").SetText(f.Actor)
	}
	if f.Detail != "" {
		fault.CreateElement("detail").SetText(f.Detail)
	}
	return fault
}
