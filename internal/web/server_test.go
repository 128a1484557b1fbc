package web_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"bluechips/internal/domain"
	"bluechips/internal/metrics"
	"bluechips/internal/services/allocate"
	"bluechips/internal/services/split"
	"bluechips/internal/web"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := zaptest.NewLogger(t)
	registry := prometheus.NewRegistry()
	srv, err := web.NewServer(web.Options{
		Split:     split.New(split.Options{Logger: log, Recorder: metrics.NewPrometheus(registry)}),
		Allocator: allocate.New(rand.NewPCG(1, 2), log),
		Logger:    log,
		Gatherer:  registry,
	})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func getBody(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestAPISplit(t *testing.T) {
	ts := newTestServer(t)

	var got web.SplitResponse
	resp := postJSON(t, ts.URL+"/api/split", map[string]any{
		"amount": "50",
		"shares": []map[string]string{
			{"id": "alice", "expression": "abc"},
			{"id": "bob", "expression": "3"},
		},
	}, &got)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	require.NotNil(t, got.Total)
	assert.Equal(t, 3.0, *got.Total)
	require.Len(t, got.Allocations, 2)

	alice := got.Allocations[0]
	assert.Equal(t, "alice-calc", alice.OutputID)
	assert.Equal(t, "NaN", alice.Display)
	assert.False(t, alice.Valid)
	assert.Nil(t, alice.Value)
	assert.Contains(t, alice.Error, "disallowed character")

	bob := got.Allocations[1]
	assert.Equal(t, "50.00", bob.Display)
	assert.True(t, bob.Valid)
	require.NotNil(t, bob.Value)
	assert.Equal(t, 50.0, *bob.Value)
}

func TestAPISplit_ZeroTotal(t *testing.T) {
	ts := newTestServer(t)

	var got web.SplitResponse
	postJSON(t, ts.URL+"/api/split", web.SplitRequest{
		Amount: "100",
		Shares: []domain.ShareEntry{{ID: "a", Expression: ""}, {ID: "b", Expression: "0"}},
	}, &got)

	for _, a := range got.Allocations {
		assert.Equal(t, "NaN", a.Display)
		assert.True(t, a.Valid)
		assert.Nil(t, a.Value)
	}
}

func TestAPISplit_TotalOverflow(t *testing.T) {
	ts := newTestServer(t)

	huge := "9" + strings.Repeat("0", 307)
	resp, err := http.Post(ts.URL+"/api/split", "application/json", strings.NewReader(
		`{"amount":"100","shares":[{"id":"a","expression":"`+huge+`"},{"id":"b","expression":"`+huge+`"}]}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got web.SplitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Nil(t, got.Total)
	require.Len(t, got.Allocations, 2)
	for _, a := range got.Allocations {
		assert.True(t, a.Valid)
		assert.Equal(t, "NaN", a.Display)
	}
}

func TestAPISplit_Exact(t *testing.T) {
	ts := newTestServer(t)

	var got web.SplitResponse
	postJSON(t, ts.URL+"/api/split", web.SplitRequest{
		Amount: "1234.56",
		Shares: []domain.ShareEntry{{ID: "a", Expression: "1"}, {ID: "b", Expression: "1"}},
		Exact:  true,
	}, &got)

	require.Empty(t, got.PortionsError)
	require.Len(t, got.Portions, 2)
	assert.Equal(t, "617.28", got.Portions[0].Amount)
	assert.Equal(t, "$617.28", got.Portions[1].Display)
}

func TestAPISplit_ExactNoWeight(t *testing.T) {
	ts := newTestServer(t)

	var got web.SplitResponse
	postJSON(t, ts.URL+"/api/split", web.SplitRequest{
		Amount: "10",
		Shares: []domain.ShareEntry{{ID: "a", Expression: "x"}},
		Exact:  true,
	}, &got)

	assert.Empty(t, got.Portions)
	assert.Equal(t, allocate.ErrNoWeight.Error(), got.PortionsError)
}

func TestAPISplit_BadJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/split", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPIEval(t *testing.T) {
	ts := newTestServer(t)

	var ok web.EvalResponse
	postJSON(t, ts.URL+"/api/eval", web.EvalRequest{Expression: "(1+2)*3"}, &ok)
	assert.True(t, ok.Valid)
	require.NotNil(t, ok.Value)
	assert.Equal(t, 9.0, *ok.Value)

	var bad web.EvalResponse
	postJSON(t, ts.URL+"/api/eval", web.EvalRequest{Expression: "3--1"}, &bad)
	assert.False(t, bad.Valid)
	assert.Nil(t, bad.Value)
	assert.Contains(t, bad.Error, "repeated operator")
}

func TestIndexPage(t *testing.T) {
	ts := newTestServer(t)

	resp, body := getBody(t, ts.URL+"/?rows=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="amount"`)
	assert.Contains(t, body, `id="share-2-calc">NaN</td>`)
	assert.NotContains(t, body, "share-3")
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "default-src 'self'")

	resp, _ = getBody(t, ts.URL+"/?rows=0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFormPost(t *testing.T) {
	ts := newTestServer(t)

	form := url.Values{
		"amount": {"100"},
		"id":     {"alice", "bob", "carol"},
		"share":  {"1", "1", "2"},
	}
	resp, err := http.PostForm(ts.URL+"/", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(b)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="alice-calc">25.00</td>`)
	assert.Contains(t, body, `id="bob-calc">25.00</td>`)
	assert.Contains(t, body, `id="carol-calc">50.00</td>`)
	assert.Contains(t, body, `value="100"`)
}

func TestFormPost_DuplicateIDs(t *testing.T) {
	ts := newTestServer(t)

	form := url.Values{
		"amount": {"100"},
		"id":     {"a", "a"},
		"share":  {"1", "3"},
	}
	resp, err := http.PostForm(ts.URL+"/", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(b)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := strings.Index(body, `id="a-calc">25.00</td>`)
	second := strings.Index(body, `id="a-calc">75.00</td>`)
	require.NotEqual(t, -1, first, body)
	require.NotEqual(t, -1, second, body)
	assert.Less(t, first, second)
}

func TestFormPost_MismatchedFields(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.PostForm(ts.URL+"/", url.Values{"id": {"a", "b"}, "share": {"1"}})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStaticAssets(t *testing.T) {
	ts := newTestServer(t)

	resp, body := getBody(t, ts.URL+"/static/calculator.js")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "function calcSplit(amountEl, shareEls)")
	assert.NotContains(t, body, "eval(")
	// Out-of-order responses are dropped.
	assert.Contains(t, body, "if (seq !== latest)")
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp, body := getBody(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", body)

	postJSON(t, ts.URL+"/api/split", web.SplitRequest{
		Amount: "10",
		Shares: []domain.ShareEntry{{ID: "a", Expression: "1"}},
	}, nil)

	resp, body = getBody(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "bluechips_splits_total 1")
}
