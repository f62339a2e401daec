// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package mime handles MIME multipart packaging for MTOM messages.

This package implements the XOP packaging convention: the SOAP envelope
travels as the root part of a multipart/related message and every binary
attachment travels as its own part, referenced from the envelope by
content-id.

# MIME Structure

	Content-Type: multipart/related; boundary="uuid:..."
	    type="application/xop+xml"; start="<rootpart...>"

	--uuid:...
	Content-Type: application/xop+xml; charset=UTF-8; type="text/xml"
	Content-Transfer-Encoding: 8bit
	Content-ID: <rootpart...>

	[SOAP envelope with xop:Include references]

	--uuid:...
	Content-Type: application/pdf
	Content-Transfer-Encoding: binary
	Content-ID: <payload-1@...>

	[Binary payload data]
	--uuid:...--

# Building

	pkg := mime.NewPackage(envelopeXML, attachments)
	contentType, body, err := pkg.Build()

The boundary is a fresh "uuid:" prefixed UUIDv4 per message. Attachment
bodies honor their declared transfer encoding (binary, base64,
quoted-printable).

# Parsing

	root, parts, err := mime.Parse(contentType, body)

Parse returns the root part's content separately from the attachment
parts, which keep their original order with transfer encodings decoded.

# References

  - XOP: https://www.w3.org/TR/xop10/
  - MTOM: https://www.w3.org/TR/soap12-mtom/
  - MIME Multipart: https://datatracker.ietf.org/doc/html/rfc2046
*/
package mime
