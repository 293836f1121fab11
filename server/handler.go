package server

import (
	"strconv"
	"strings"
	"time"

	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"

	"github.com/iostrovok/trimothy/internal/op"
	"github.com/iostrovok/trimothy/internal/textio"
)

const (
	PathPrefix = "/v1/"
	PathOps    = "/v1/ops"

	HeaderRequestID = "X-Request-Id"

	contentTypeText   = "text/plain; charset=utf-8"
	contentTypeBinary = "application/octet-stream"
	contentTypeJSON   = "application/json"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrBodyTooLarge     = errors.New("request body too large")
	ErrShuttingDown     = errors.New("server is shutting down")
)

// StatusError carries the HTTP status a failed request is answered with.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func withStatus(code int, err error) error {
	return &StatusError{Code: code, Err: err}
}

// OpInfo is one entry of the GET /v1/ops listing.
type OpInfo struct {
	Name     string `json:"name"`
	Matching bool   `json:"matching"`
}

type OpsResponse struct {
	Ops []OpInfo `json:"ops"`
}

// ServeHTTP answers one request and logs it.
func (server *Server) ServeHTTP(fastCtx *fasthttp.RequestCtx) {
	ctx := newContext(server, fastCtx)
	fastCtx.Response.Header.Set(HeaderRequestID, strconv.FormatUint(ctx.UniqID(), 10))

	err := server.route(ctx)
	if err != nil {
		code := fasthttp.StatusInternalServerError
		var se *StatusError
		if errors.As(err, &se) {
			code = se.Code
		}
		// RequestCtx.Error would drop headers such as the auth challenge
		fastCtx.Response.ResetBody()
		fastCtx.SetStatusCode(code)
		fastCtx.SetContentType(contentTypeText)
		fastCtx.SetBodyString(err.Error())
	}

	ctx.Logger().
		Add("request_id", ctx.UniqID()).
		Add("status", ctx.Status()).
		Add("duration_ms", float64(time.Since(ctx.start).Microseconds())/1000).
		Error(err)

	switch {
	case err == nil:
		ctx.Logger().Infof("request")
	case ctx.Status() >= fasthttp.StatusInternalServerError:
		ctx.Logger().Errorf("request failed")
	default:
		ctx.Logger().Warnf("request rejected")
	}
}

func (server *Server) route(ctx *Context) error {
	user, err := server.auth.Check(ctx.fastCtx)
	if user != "" {
		ctx.Logger().Add("user", user)
	}
	if err != nil {
		return err
	}

	path := string(ctx.fastCtx.Path())

	switch {
	case path == PathOps:
		if !ctx.fastCtx.IsGet() && !ctx.fastCtx.IsHead() {
			return withStatus(fasthttp.StatusMethodNotAllowed, ErrMethodNotAllowed)
		}
		return server.listOps(ctx)

	case strings.HasPrefix(path, PathPrefix):
		if !ctx.fastCtx.IsPost() {
			return withStatus(fasthttp.StatusMethodNotAllowed, ErrMethodNotAllowed)
		}
		return server.apply(ctx, path[len(PathPrefix):])
	}

	return withStatus(fasthttp.StatusNotFound, errors.Wrap(ErrNotFound, path))
}

func (server *Server) listOps(ctx *Context) error {
	res := OpsResponse{Ops: make([]OpInfo, 0, len(op.All))}
	for _, o := range op.All {
		res.Ops = append(res.Ops, OpInfo{Name: o.String(), Matching: o.IsMatching()})
	}

	body, err := json.ConfigCompatibleWithStandardLibrary.Marshal(res)
	if err != nil {
		return errors.Wrap(err, "encode ops")
	}

	ctx.SetContentType(contentTypeJSON)
	_, err = ctx.Write(body)
	return err
}

func (server *Server) apply(ctx *Context, name string) error {
	o, err := op.ParseOp(name)
	if err != nil {
		return withStatus(fasthttp.StatusBadRequest, err)
	}

	req := op.Request{
		Op:     o,
		Text:   ctx.PeekBoolParam("text"),
		Cutset: ctx.PeekStringParam("cutset"),
	}
	ctx.Logger().Add("op", o.String()).Add("text", req.Text)

	in := ctx.Body()
	if len(in) > server.maxBodySize {
		return withStatus(fasthttp.StatusRequestEntityTooLarge, ErrBodyTooLarge)
	}
	ctx.Logger().Add("in_bytes", len(in))

	if err := ctx.Ctx().Err(); err != nil {
		return withStatus(fasthttp.StatusServiceUnavailable, errors.Wrap(ErrShuttingDown, err.Error()))
	}

	contentType := contentTypeBinary
	if req.Text {
		contentType = contentTypeText

		decode := textio.Decode
		if ctx.PeekBoolParam("lossy") {
			decode = textio.Repair
		}

		if in, err = decode(in); err != nil {
			return withStatus(fasthttp.StatusBadRequest, err)
		}
	}

	out, err := op.Apply(req, in)
	if err != nil {
		return withStatus(fasthttp.StatusBadRequest, err)
	}

	ctx.Logger().Add("out_bytes", len(out))

	ctx.SetContentType(contentType)
	_, err = ctx.Write(out)
	return err
}
