package message

// Namespace constants for SOAP and XOP
const (
	// NsSOAP11 is the SOAP 1.1 envelope namespace
	NsSOAP11 = "http://schemas.xmlsoap.org/soap/envelope/"
	// NsSOAP12 is the SOAP 1.2 envelope namespace
	NsSOAP12 = "http://www.w3.org/2003/05/soap-envelope"
	// NsSOAPEncoding is the SOAP 1.1 encoding namespace
	NsSOAPEncoding = "http://schemas.xmlsoap.org/soap/encoding/"
	// NsXOP is the XML-binary Optimized Packaging namespace
	NsXOP = "http://www.w3.org/2004/08/xop/include"
	// NsXSI is the XML Schema instance namespace
	NsXSI = "http://www.w3.org/2001/XMLSchema-instance"
	// NsXSD is the XML Schema namespace
	NsXSD = "http://www.w3.org/2001/XMLSchema"
)

// Content types per SOAP version
const (
	// ContentTypeSOAP11 is the wire content type for SOAP 1.1
	ContentTypeSOAP11 = "text/xml; charset=utf-8"
	// ContentTypeSOAP12 is the wire content type for SOAP 1.2, without
	// the action parameter
	ContentTypeSOAP12 = "application/soap+xml; charset=utf-8"
)
