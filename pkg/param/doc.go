// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package param defines the parameter tree handed to the message builder.

A parameter tree is an arbitrarily nested structure of scalars, lists and
ordered objects, with binary content tagged by AttachmentMarker values at
any depth. The Value interface is a closed union: the five concrete types
in this package are the only implementations, so consumers can switch on
the concrete type and handle every case.

# Building a Tree

	params := param.NewObject().
	    Set("customer", param.String("ACME Corp")).
	    Set("invoice", &param.AttachmentMarker{
	        Data:        pdfBytes,
	        ContentType: "application/pdf",
	    })

# Attachment Markers

AttachmentMarker values never reach XML serialization. The attachment
extractor replaces each marker with a *XOPInclude placeholder whose Href
references the extracted MIME part:

	<xop:Include href="cid:1a2b3c@mtom.siros.org"/>

# Errors

Malformed trees are reported with *Error, which names the offending key
path ("order.items[2].file") so callers can locate the bad value.
*/
package param
