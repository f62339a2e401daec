// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package message serializes parameter trees into SOAP message bodies and
wraps them in version-appropriate envelopes.

# Style and Use

Serialization follows the WSDL binding's style/use matrix:

	document/literal  parameters become named sibling elements under the
	                  operation element; the target namespace sits on the
	                  operation element only
	document/encoded  same naming, plus xsi:type annotations per element
	rpc/literal       parameters nest, unqualified, inside an element
	                  named after the operation
	rpc/encoded       rpc nesting plus xsi:type and a SOAP encodingStyle
	                  declaration

Every parameter name maps 1:1 to an XML element name; multiple parameters
are never collapsed into a synthetic wrapper.

# Envelopes

Wrap produces the envelope for either protocol version:

	SOAP 1.1  namespace http://schemas.xmlsoap.org/soap/envelope/,
	          Content-Type text/xml, SOAPAction transport header
	SOAP 1.2  namespace http://www.w3.org/2003/05/soap-envelope,
	          Content-Type application/soap+xml with embedded action

Pre-built header blobs (for example WS-Security headers produced by an
external signer) merge unmodified under the Header element; when there
are none the Header element is omitted.

# Faults

BuildFault emits the version-correct fault shape: flat
faultcode/faultstring for 1.1, nested Code/Value and Reason/Text for 1.2.
*/
package message
