// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package gomtom implements the message-construction core of a SOAP stack
with MTOM/XOP attachment support.

# Overview

go-mtom is a pure transform between (operation schema, parameter tree)
and wire bytes. Given a resolved operation schema (name, namespace,
binding style, encoding use, SOAP version) and a recursively nested
parameter tree, it produces a wire-correct request body; given response
bytes, it reconstructs a structured result. Binary content embedded
anywhere in the tree is extracted into MIME parts, referenced from the
XML through xop:Include, and losslessly spliced back on receipt.

It performs no network I/O and parses no WSDL; transports and schema
resolution are external collaborators.

# Specifications Implemented

  - SOAP 1.1: https://www.w3.org/TR/2000/NOTE-SOAP-20000508/
  - SOAP 1.2: https://www.w3.org/TR/soap12-part1/
  - MTOM: https://www.w3.org/TR/soap12-mtom/
  - XOP: https://www.w3.org/TR/xop10/
  - MIME Multipart: https://datatracker.ietf.org/doc/html/rfc2046

# Package Structure

	github.com/sirosfoundation/go-mtom/pkg/mtom       - send/receive pipeline
	github.com/sirosfoundation/go-mtom/pkg/param      - parameter tree values
	github.com/sirosfoundation/go-mtom/pkg/schema     - operation schema types
	github.com/sirosfoundation/go-mtom/pkg/attachment - attachments and extraction
	github.com/sirosfoundation/go-mtom/pkg/message    - body builder and envelopes
	github.com/sirosfoundation/go-mtom/pkg/mime       - multipart/related packaging
	github.com/sirosfoundation/go-mtom/pkg/response   - result reconstruction

# Quick Start

	import (
	    "github.com/sirosfoundation/go-mtom/pkg/attachment"
	    "github.com/sirosfoundation/go-mtom/pkg/mtom"
	    "github.com/sirosfoundation/go-mtom/pkg/param"
	    "github.com/sirosfoundation/go-mtom/pkg/schema"
	)

	op := &schema.Operation{
	    Name:      "submitInvoice",
	    Namespace: "http://example.com/billing",
	    Style:     schema.StyleDocument,
	    Use:       schema.UseLiteral,
	    Version:   schema.SOAP12,
	}

	params := param.NewObject().
	    Set("customer", param.String("ACME Corp")).
	    Set("document", &param.AttachmentMarker{
	        Data:        pdfBytes,
	        ContentType: "application/pdf",
	    })

	req, err := mtom.BuildRequest(attachment.DefaultConfig(), op, params, nil)
	// hand req.ContentType, req.Headers and req.Body to your transport

	result, err := mtom.ParseResponse(respContentType, respBody)

# Concurrency

Every build and parse call is a pure function over its inputs. There is
no shared mutable state; calls are independently safe from any number of
goroutines.

# License

BSD-2-Clause License
*/
package gomtom
