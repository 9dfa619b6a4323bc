package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func TestUploadDocument_Success(t *testing.T) {
	app := newTestApp(t, &echoGenerator{}, 1<<20)

	rr := app.do(uploadRequest(t, "file", "report.pdf", "quarterly numbers"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Document uploaded successfully", decodeBody(t, rr)["message"])
	assert.NotNil(t, sessionCookie(rr))
}

func TestUploadDocument_NoReadableText(t *testing.T) {
	app := newTestApp(t, &echoGenerator{}, 1<<20)

	rr := app.do(uploadRequest(t, "file", "scan.pdf", "\f \n\f"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "No readable text found in document", decodeBody(t, rr)["message"])
}

func TestUploadDocument_MissingFileField(t *testing.T) {
	app := newTestApp(t, &echoGenerator{}, 1<<20)

	rr := app.do(uploadRequest(t, "attachment", "report.pdf", "text"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "File is required", decodeBody(t, rr)["error"])
}

func TestUploadDocument_NotMultipart(t *testing.T) {
	app := newTestApp(t, &echoGenerator{}, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"file": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := app.do(req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadDocument_Unparsable(t *testing.T) {
	app := newTestApp(t, &echoGenerator{}, 1<<20)

	rr := app.do(uploadRequest(t, "file", "broken.pdf", "CORRUPT bytes"))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Uploaded file is not a readable PDF", decodeBody(t, rr)["error"])
}

func TestUploadDocument_TooLarge(t *testing.T) {
	app := newTestApp(t, &echoGenerator{}, 16)

	rr := app.do(uploadRequest(t, "file", "big.pdf", strings.Repeat("x", 64)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestUploadDocument_BodyOverLimit(t *testing.T) {
	app := newTestApp(t, &echoGenerator{}, 16)

	rr := app.do(uploadRequest(t, "file", "huge.pdf", string(bytes.Repeat([]byte("x"), multipartOverhead+64))))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestUploadDocument_WrongMethod(t *testing.T) {
	app := newTestApp(t, &echoGenerator{}, 1<<20)

	rr := app.do(httptest.NewRequest(http.MethodGet, "/upload", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
