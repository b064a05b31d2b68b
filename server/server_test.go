package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/spektr-org/sentencer/engine"
	"github.com/spektr-org/sentencer/translator"
	"github.com/spektr-org/sentencer/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	return NewEngine(NewActions(NewStaticStore(vocab.Default()), NewMetrics()))
}

func do(engine http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSentence(t *testing.T) {
	e := newTestEngine(t)
	rec := do(e, http.MethodPost, "/sentence",
		`{"subject":"he","verb":"eat","object":"apple","tense":"future","aspect":"perfect-continuous","negation":true,"question":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp translator.Response
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Will he not have been eating an apple?", resp.Sentence)
	assert.Equal(t, engine.Future, resp.Tense)
	assert.Equal(t, engine.PerfectContinuous, resp.Aspect)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestSentenceErrors(t *testing.T) {
	e := newTestEngine(t)

	rec := do(e, http.MethodPost, "/sentence", `{"subject":"dragon","verb":"eat"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown subject")

	rec = do(e, http.MethodPost, "/sentence", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/sentence", `{"subject":"he","verb":"eat","tense":"tomorrow"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	metricsRec := do(e, http.MethodGet, "/metrics", "")
	assert.Contains(t, metricsRec.Body.String(), `sentencer_request_errors_total{route="sentence"} 3`)
}

func TestTable(t *testing.T) {
	e := newTestEngine(t)
	rec := do(e, http.MethodPost, "/table", `{"subject":"she","verb":"write","object":"letters","negation":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var table engine.TableData
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &table))
	require.Len(t, table.Rows, 3)
	require.Len(t, table.Columns, 5)
	assert.Equal(t, "She does not write letters.", table.Rows[0][1])
	assert.Equal(t, "She had not written letters.", table.Rows[1][2])
}

func TestVocabularyAndHealth(t *testing.T) {
	e := newTestEngine(t)

	rec := do(e, http.MethodGet, "/vocabulary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp vocabularyResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, vocab.Default().Stats(), resp.Stats)

	rec = do(e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}

func TestMetricsCountSentences(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 2; i++ {
		rec := do(e, http.MethodPost, "/sentence", `{"subject":"I","verb":"eat","aspect":"continuous"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := do(e, http.MethodGet, "/metrics", "")
	assert.Contains(t, rec.Body.String(), `sentencer_sentences_built_total{aspect="continuous",tense="present"} 2`)
}

func TestRequestIDIsPropagated(t *testing.T) {
	e := newTestEngine(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestUnknownRoute(t *testing.T) {
	e := newTestEngine(t)
	rec := do(e, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
