package server

import (
	"bytes"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

var ErrUnauthorized = errors.New("unauthorized")

// BaseAuth checks HTTP basic credentials against a fixed user list. User
// names are case-insensitive. A nil or empty BaseAuth lets everything
// through.
type BaseAuth struct {
	realm string
	users map[string]string
}

func NewBaseAuth(realm string, users map[string]string) *BaseAuth {
	if realm == "" {
		realm = "trimothy"
	}

	copied := make(map[string]string, len(users))
	for u, p := range users {
		copied[strings.ToLower(u)] = p
	}

	return &BaseAuth{realm: realm, users: copied}
}

func (h *BaseAuth) Use() bool {
	return h != nil && len(h.users) > 0
}

func (h *BaseAuth) header() string {
	return `Basic realm="` + h.realm + `", charset="UTF-8"`
}

// Check returns the authenticated user, or ErrUnauthorized after preparing a
// 401 challenge on fastCtx.
func (h *BaseAuth) Check(fastCtx *fasthttp.RequestCtx) (string, error) {
	if !h.Use() {
		return "", nil
	}

	user, passwd, ok := parseBasic(fastCtx.Request.Header.Peek(fasthttp.HeaderAuthorization))
	if ok {
		if want, find := h.users[user]; find &&
			subtle.ConstantTimeCompare([]byte(want), []byte(passwd)) == 1 {
			return user, nil
		}
	}

	fastCtx.Response.Header.Set(fasthttp.HeaderWWWAuthenticate, h.header())
	return user, withStatus(fasthttp.StatusUnauthorized, ErrUnauthorized)
}

func parseBasic(auth []byte) (string, string, bool) {
	i := bytes.IndexByte(auth, ' ')
	if i == -1 || !bytes.EqualFold(auth[:i], []byte("basic")) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(auth[i+1:])))
	if err != nil {
		return "", "", false
	}

	// the password may hold colons, the user may not
	j := bytes.IndexByte(decoded, ':')
	if j <= 0 {
		return "", "", false
	}

	return strings.ToLower(string(decoded[:j])), string(decoded[j+1:]), true
}
