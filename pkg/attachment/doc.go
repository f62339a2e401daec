// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package attachment implements binary attachment handling for MTOM.

An Attachment is the validated value object for one binary MIME part:
content bytes, MIME type, transfer encoding and a content-id unique within
the message. The Extractor walks a parameter tree, lifts every
AttachmentMarker out into a flat attachment list and substitutes
xop:Include placeholders, so the XML serializer never sees raw binary.

# Creating Attachments

	att, err := attachment.New(pdfBytes, "application/pdf")
	att, err := attachment.New(data, "image/png",
	    attachment.WithContentID("logo@example.com"),
	    attachment.WithTransferEncoding(attachment.EncodingBase64),
	)

# Extraction

	ext := attachment.NewExtractor(attachment.DefaultConfig())
	rewritten, atts, err := ext.Extract(params)

Extraction is depth-first in document order, so attachments appear in the
multipart body in the same order as their references in the XML. Receivers
match parts strictly by content-id.

# Limits

Config carries the per-attachment size ceiling (default 100 MiB) and the
host tag used in generated content-ids. It is passed explicitly; there is
no process-wide state.
*/
package attachment
