package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File[field][0]
}

func pdfBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte("%PDF-1.4\n"))
	return b
}

func newTestService(t *testing.T) *Service {
	return NewService(t.TempDir(), "http://localhost:8080", "test-signing-key", time.Hour)
}

func TestSaveAcceptsPDF(t *testing.T) {
	svc := newTestService(t)

	fh := multipartFile(t, "file", "paper.pdf", pdfBytes(2048))
	path, err := svc.Save(BucketPapers, fh)
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	abs, err := svc.AbsPath(BucketPapers, path)
	require.NoError(t, err)
	assert.FileExists(t, abs)
}

func TestSaveRejectsNonPDFManuscript(t *testing.T) {
	svc := newTestService(t)

	fh := multipartFile(t, "file", "paper.txt", []byte("plain text, definitely not a pdf"))
	_, err := svc.Save(BucketPapers, fh)
	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	svc := newTestService(t)

	fh := multipartFile(t, "file", "big.pdf", pdfBytes(10<<20+1))
	_, err := svc.Save(BucketPapers, fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaveRejectsUnknownBucket(t *testing.T) {
	svc := newTestService(t)

	fh := multipartFile(t, "file", "paper.pdf", pdfBytes(512))
	_, err := svc.Save("not-a-bucket", fh)
	assert.ErrorIs(t, err, ErrUnknownBucket)
}

func TestSignedURLRoundTrip(t *testing.T) {
	svc := newTestService(t)

	fh := multipartFile(t, "file", "proof.pdf", pdfBytes(1024))
	path, err := svc.Save(BucketPaymentProofs, fh)
	require.NoError(t, err)

	url, err := svc.SignedURL(BucketPaymentProofs, path)
	require.NoError(t, err)
	assert.Contains(t, url, "exp=")
	assert.Contains(t, url, "sig=")

	// Pull exp and sig back out of the URL the way the handler would.
	var exp, sig string
	for _, part := range bytes.Split([]byte(url[bytes.IndexByte([]byte(url), '?')+1:]), []byte("&")) {
		kv := bytes.SplitN(part, []byte("="), 2)
		switch string(kv[0]) {
		case "exp":
			exp = string(kv[1])
		case "sig":
			sig = string(kv[1])
		}
	}

	assert.NoError(t, svc.Authorize(BucketPaymentProofs, path, exp, sig))
	assert.ErrorIs(t, svc.Authorize(BucketPaymentProofs, path, exp, "deadbeef"), ErrBadSignature)
	assert.ErrorIs(t, svc.Authorize(BucketPaymentProofs, path, "1", sig), ErrBadSignature)
}

func TestPublicBucketNeedsNoSignature(t *testing.T) {
	svc := newTestService(t)
	assert.NoError(t, svc.Authorize(BucketCertificates, "2026/01/cert.pdf", "", ""))

	url, err := svc.PublicURL(BucketCertificates, "2026/01/cert.pdf")
	require.NoError(t, err)
	assert.NotContains(t, url, "sig=")
}
