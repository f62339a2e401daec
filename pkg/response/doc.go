// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package response reconstructs structured results from response bytes.

Parse dispatches on the response Content-Type: multipart/related bodies
go through the MIME packager and have their xop:Include references
resolved against the attachment parts; plain XML bodies parse directly.
Any other content type is rejected.

A SOAP fault is surfaced as Result.Fault, a normal result variant:

	result, err := response.Parse(contentType, body)
	if err != nil {
	    // transport-level or format problem
	}
	if result.IsFault() {
	    // the peer reported a fault
	}

Reconstruction is all-or-nothing: an xop:Include that resolves to no MIME
part fails the whole parse rather than returning a tree with holes.
*/
package response
