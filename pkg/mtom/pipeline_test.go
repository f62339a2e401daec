package mtom

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-mtom/pkg/attachment"
	"github.com/sirosfoundation/go-mtom/pkg/param"
	"github.com/sirosfoundation/go-mtom/pkg/schema"
)

func pipelineOp(version schema.Version) *schema.Operation {
	return &schema.Operation{
		Name:       "uploadDocument",
		Namespace:  "http://example.com/docs",
		SOAPAction: "http://example.com/docs/upload",
		Style:      schema.StyleDocument,
		Use:        schema.UseLiteral,
		Version:    version,
	}
}

func TestBuildRequest_NoAttachments(t *testing.T) {
	params := param.NewObject().Set("title", param.String("Q3 report"))

	req, err := BuildRequest(attachment.DefaultConfig(), pipelineOp(schema.SOAP11), params, nil)
	require.NoError(t, err)

	// Bare envelope, no multipart framing
	assert.Equal(t, "text/xml; charset=utf-8", req.ContentType)
	assert.Equal(t, 0, req.Attachments)
	assert.Equal(t, `"http://example.com/docs/upload"`, req.Headers["SOAPAction"])
	assert.True(t, bytes.HasPrefix(req.Body, []byte(`<?xml version="1.0" encoding="UTF-8"?>`)))
	assert.Contains(t, string(req.Body), "<title>Q3 report</title>")
}

func TestBuildRequest_WithAttachment(t *testing.T) {
	payload := bytes.Repeat([]byte{0x25, 0x50, 0x44, 0x46}, 64)
	params := param.NewObject().
		Set("title", param.String("contract")).
		Set("file", &param.AttachmentMarker{Data: payload, ContentType: "application/pdf"})

	req, err := BuildRequest(attachment.DefaultConfig(), pipelineOp(schema.SOAP12), params, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, req.Attachments)
	assert.True(t, strings.HasPrefix(req.ContentType, "multipart/related"))
	assert.Empty(t, req.Headers)

	body := string(req.Body)
	assert.Contains(t, body, "xop:Include")
	// The envelope never carries the raw payload inline
	envEnd := strings.Index(body, "</soap:Envelope>")
	require.Greater(t, envEnd, 0)
	assert.NotContains(t, body[:envEnd], string(payload))
}

func TestBuildRequest_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0x89, 'P', 'N', 'G'}, 512)
	params := param.NewObject().
		Set("name", param.String("logo.png")).
		Set("image", &param.AttachmentMarker{Data: payload, ContentType: "image/png"})

	req, err := BuildRequest(attachment.DefaultConfig(), pipelineOp(schema.SOAP12), params, nil)
	require.NoError(t, err)

	result, err := ParseResponse(req.ContentType, req.Body)
	require.NoError(t, err)
	assert.Equal(t, "uploadDocument", result.Operation)

	obj := result.Value.(*param.Object)
	assert.Equal(t, param.String("logo.png"), obj.Get("name"))

	marker, ok := obj.Get("image").(*param.AttachmentMarker)
	require.True(t, ok)
	assert.Equal(t, payload, marker.Data)
	assert.Equal(t, "image/png", marker.ContentType)
}

func TestBuildRequest_SOAP12ContentType(t *testing.T) {
	req, err := BuildRequest(attachment.DefaultConfig(), pipelineOp(schema.SOAP12), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `application/soap+xml; charset=utf-8; action="http://example.com/docs/upload"`, req.ContentType)
	assert.Empty(t, req.Headers)
}

func TestBuildRequest_HeaderBlobs(t *testing.T) {
	headers := []string{`<ns:Token xmlns:ns="urn:auth">secret</ns:Token>`}
	req, err := BuildRequest(attachment.DefaultConfig(), pipelineOp(schema.SOAP11), nil, headers)
	require.NoError(t, err)
	assert.Contains(t, string(req.Body), "<ns:Token")
	assert.Contains(t, string(req.Body), "soap:Header")
}

func TestBuildRequest_InvalidOperation(t *testing.T) {
	op := pipelineOp(schema.SOAP11)
	op.Namespace = ""

	req, err := BuildRequest(attachment.DefaultConfig(), op, nil, nil)
	assert.Nil(t, req)

	var sErr *schema.Error
	require.True(t, errors.As(err, &sErr))
	assert.Equal(t, "namespace", sErr.Field)
}

func TestBuildRequest_OversizedAttachment(t *testing.T) {
	cfg := attachment.Config{MaxSize: 16, HostTag: "test.local"}
	params := param.NewObject().
		Set("file", &param.AttachmentMarker{Data: make([]byte, 64), ContentType: "application/pdf"})

	_, err := BuildRequest(cfg, pipelineOp(schema.SOAP11), params, nil)
	var vErr *attachment.ValidationError
	require.True(t, errors.As(err, &vErr))
}

func TestBuildRequest_ConfigHostTagInContentIDs(t *testing.T) {
	cfg := attachment.Config{MaxSize: attachment.DefaultMaxSize, HostTag: "gateway.corp"}
	params := param.NewObject().
		Set("file", &param.AttachmentMarker{Data: []byte("x"), ContentType: "text/plain"})

	req, err := BuildRequest(cfg, pipelineOp(schema.SOAP11), params, nil)
	require.NoError(t, err)
	assert.Contains(t, string(req.Body), "@gateway.corp")
	assert.Contains(t, req.ContentType, "@gateway.corp")
}

func TestEstimateMessageSize(t *testing.T) {
	const k = 1 << 20
	params := param.NewObject().
		Set("file", &param.AttachmentMarker{Data: make([]byte, k), ContentType: "application/pdf"})

	est, err := EstimateMessageSize(attachment.DefaultConfig(), pipelineOp(schema.SOAP12), params, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, est, int64(k))
	assert.Less(t, est, int64(k+5000))
}

func TestEstimateMessageSize_Base64Expansion(t *testing.T) {
	const k = 3000
	params := param.NewObject().
		Set("file", &param.AttachmentMarker{
			Data:             make([]byte, k),
			ContentType:      "application/pdf",
			TransferEncoding: string(attachment.EncodingBase64),
		})

	est, err := EstimateMessageSize(attachment.DefaultConfig(), pipelineOp(schema.SOAP12), params, nil)
	require.NoError(t, err)
	// base64 expands 3 bytes to 4
	assert.GreaterOrEqual(t, est, int64(k*4/3))
}

func TestEstimateMessageSize_InvalidOperation(t *testing.T) {
	op := pipelineOp(schema.SOAP11)
	op.Style = "wrapped"
	_, err := EstimateMessageSize(attachment.DefaultConfig(), op, nil, nil)
	require.Error(t, err)
}
