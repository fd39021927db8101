package preview

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func testAsset(t *testing.T) Asset {
	return Asset{
		Data:            gzipped(t, []byte("<html><body>camera</body></html>")),
		Source:          bytes.Repeat([]byte("    0x00, 0x00, 0x00, 0x00,\n"), 200),
		ContentType:     "text/html",
		ContentEncoding: "gzip",
	}
}

func TestIndex(t *testing.T) {
	logger, hook := test.NewNullLogger()
	asset := testAsset(t)
	s := New(":0", asset, logger)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html", rr.Header().Get("Content-Type"))
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, asset.Data, rr.Body.Bytes())

	gr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	page, err := io.ReadAll(gr)
	require.NoError(t, err)
	assert.Equal(t, "<html><body>camera</body></html>", string(page))

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Incoming HTTP request", entry.Message)
	assert.Equal(t, "/", entry.Data["url"])
	assert.NotEmpty(t, entry.Data["correlationID"])
}

func TestIndex_noEncoding(t *testing.T) {
	logger, _ := test.NewNullLogger()
	asset := Asset{Data: []byte("plain"), ContentType: "text/plain"}
	s := New(":0", asset, logger)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-ID", "abc")
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "5", rr.Header().Get("Content-Length"))
	assert.Equal(t, "abc", rr.Header().Get("X-Correlation-ID"))
	assert.Equal(t, "plain", rr.Body.String())
}

func TestIndex_head(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := New(":0", testAsset(t), logger)

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Zero(t, rr.Body.Len())
}

func TestSource_gzip(t *testing.T) {
	logger, _ := test.NewNullLogger()
	asset := testAsset(t)
	s := New(":0", asset, logger)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/header.h", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	gr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	src, err := io.ReadAll(gr)
	require.NoError(t, err)
	assert.Equal(t, asset.Source, src)
}

func TestSource_identity(t *testing.T) {
	logger, _ := test.NewNullLogger()
	asset := testAsset(t)
	s := New(":0", asset, logger)

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/header.h", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, asset.Source, rr.Body.Bytes())
}

func TestHealth(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := New(":0", testAsset(t), logger)

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]bool
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.True(t, body["ok"])
}

func TestMethodNotAllowed(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := New(":0", testAsset(t), logger)

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRun_shutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	logger, _ := test.NewNullLogger()
	s := New(addr, testAsset(t), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + addr + "/health")
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_listenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	logger, _ := test.NewNullLogger()
	s := New(l.Addr().String(), testAsset(t), logger)

	err = s.Run(context.Background())
	assert.Error(t, err)
}
