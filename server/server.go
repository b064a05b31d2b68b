package server

import (
	"io"
	"net/http"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spektr-org/sentencer/translator"
	"github.com/spektr-org/sentencer/vocab"
)

// ============================================================================
// SERVER — HTTP API over the sentence engine
// ============================================================================
// Routes:
//   POST /sentence    build one sentence
//   POST /table       build the 3x4 conjugation table
//   GET  /vocabulary  current vocabulary and counts
//   GET  /healthz     liveness
//   GET  /metrics     Prometheus metrics
// ============================================================================

const (
	RequestIDHeader = "X-Request-Id"
	requestIDKey    = "requestId"
	maxBodyBytes    = 64 << 10
)

// Actions implements the API handlers.
type Actions struct {
	store      *Store
	translator *translator.Translator
	metrics    *Metrics
}

func NewActions(store *Store, metrics *Metrics) *Actions {
	return &Actions{
		store:      store,
		translator: translator.New(store),
		metrics:    metrics,
	}
}

// NewEngine wires the routes and middleware.
func NewEngine(actions *Actions) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(RequestID())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	engine.POST("/sentence", actions.Sentence)
	engine.POST("/table", actions.Table)
	engine.GET("/vocabulary", actions.Vocabulary)
	engine.GET("/healthz", actions.Health)
	engine.GET("/metrics", gin.WrapH(actions.metrics.Handler()))
	return engine
}

// RequestID propagates an incoming X-Request-Id or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Writer.Header().Set(RequestIDHeader, id)
		ctx.Next()
	}
}

func (a *Actions) Sentence(ctx *gin.Context) {
	req, ok := a.decode(ctx, "sentence")
	if !ok {
		return
	}
	resp, err := a.translator.Render(req)
	if err != nil {
		a.fail(ctx, "sentence", err)
		return
	}
	a.metrics.SentenceBuilt(resp.Tense, resp.Aspect)
	uniresp.WriteJSONResponse(ctx.Writer, resp)
}

func (a *Actions) Table(ctx *gin.Context) {
	req, ok := a.decode(ctx, "table")
	if !ok {
		return
	}
	table, err := a.translator.Table(req)
	if err != nil {
		a.fail(ctx, "table", err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, table)
}

type vocabularyResponse struct {
	Stats      vocab.Stats       `json:"stats"`
	Vocabulary *vocab.Vocabulary `json:"vocabulary"`
}

func (a *Actions) Vocabulary(ctx *gin.Context) {
	v := a.store.Vocabulary()
	uniresp.WriteJSONResponse(ctx.Writer, vocabularyResponse{Stats: v.Stats(), Vocabulary: v})
}

func (a *Actions) Health(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"ok": true, "vocabulary": a.store.Vocabulary().Stats()})
}

func (a *Actions) decode(ctx *gin.Context, route string) (translator.Request, bool) {
	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxBodyBytes))
	if err != nil {
		a.fail(ctx, route, err)
		return translator.Request{}, false
	}
	req, err := translator.Decode(body)
	if err != nil {
		a.fail(ctx, route, err)
		return translator.Request{}, false
	}
	return req, true
}

func (a *Actions) fail(ctx *gin.Context, route string, err error) {
	a.metrics.RequestFailed(route)
	status := http.StatusInternalServerError
	if translator.IsClientError(err) {
		status = http.StatusBadRequest
	} else {
		log.Error().Err(err).Str("route", route).Str(requestIDKey, ctx.GetString(requestIDKey)).Msg("request failed")
	}
	uniresp.WriteJSONErrorResponse(ctx.Writer, uniresp.NewActionErrorFrom(err), status)
}
