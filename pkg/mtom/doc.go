// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package mtom ties the message-construction pipeline together.

BuildRequest turns an operation schema and a parameter tree into
wire-ready bytes:

	parameters -> attachment extraction -> body serialization
	           -> envelope wrapping -> MIME packaging (when attachments exist)

ParseResponse is the mirror image, routing through the MIME parser when
the response is multipart and rehydrating xop:Include references.

	op := &schema.Operation{
	    Name: "uploadDocument", Namespace: "http://example.com/docs",
	    Style: schema.StyleDocument, Use: schema.UseLiteral,
	    Version: schema.SOAP12,
	}
	params := param.NewObject().
	    Set("name", param.String("invoice.pdf")).
	    Set("file", &param.AttachmentMarker{Data: pdf, ContentType: "application/pdf"})

	req, err := mtom.BuildRequest(attachment.DefaultConfig(), op, params, nil)
	// req.ContentType, req.Headers, req.Body go to the transport

Every call is a pure function of its inputs and safe for concurrent use;
transport, retries and timeouts belong to the caller.
*/
package mtom
