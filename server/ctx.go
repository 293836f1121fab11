package server

import (
	"context"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/iostrovok/trimothy/logger"
)

// Context is the per-request state handed to the handlers.
type Context struct {
	baseCtx context.Context

	// sequential request id, for logs and tests
	uniqID uint64
	start  time.Time

	fastCtx *fasthttp.RequestCtx
	logger  *logger.Logger
}

func newContext(server *Server, fastCtx *fasthttp.RequestCtx) *Context {
	id := server.requests.Add(1)

	return &Context{
		baseCtx: server.ctx,
		uniqID:  id,
		start:   time.Now(),
		fastCtx: fastCtx,
		logger: server.Logger().
			Add("method", string(fastCtx.Method())).
			Add("path", string(fastCtx.Path())),
	}
}

// Ctx returns the server context, done once shutdown starts.
func (ctx *Context) Ctx() context.Context {
	return ctx.baseCtx
}

func (ctx *Context) Logger() *logger.Logger {
	return ctx.logger
}

func (ctx *Context) UniqID() uint64 {
	return ctx.uniqID
}

func (ctx *Context) Body() []byte {
	return ctx.fastCtx.PostBody()
}

// PeekParam returns a query argument. The body is the input, so form
// arguments are never read.
func (ctx *Context) PeekParam(key string) []byte {
	return ctx.fastCtx.QueryArgs().Peek(key)
}

func (ctx *Context) PeekStringParam(key string) string {
	return string(ctx.PeekParam(key))
}

func (ctx *Context) PeekBoolParam(key string) bool {
	if !ctx.fastCtx.QueryArgs().Has(key) {
		return false
	}

	switch strings.ToLower(ctx.PeekStringParam(key)) {
	case "0", "f", "false", "no", "off":
		return false
	}

	return true
}

// Write appends p to the response body.
func (ctx *Context) Write(p []byte) (int, error) {
	ctx.fastCtx.Response.AppendBody(p)
	return len(p), nil
}

func (ctx *Context) SetContentType(ct string) *Context {
	ctx.fastCtx.SetContentType(ct)
	return ctx
}

func (ctx *Context) Status() int {
	return ctx.fastCtx.Response.StatusCode()
}
