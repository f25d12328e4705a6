package server

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	AllowOriginHeader       = "Access-Control-Allow-Origin"
	AllowHeadersHeader      = "Access-Control-Allow-Headers"
	AllowMethodsHeader      = "Access-Control-Allow-Methods"
	AllControlRequestHeader = "Access-Control-Request-Method"
	AllowCredentialsHeader  = "Access-Control-Allow-Credentials"
	ExposeHeadersHeader     = "Access-Control-Expose-Headers"
	MaxAgeHeader            = "Access-Control-Max-Age"
	Separator               = ", "
)

// Cors configures cross origin access; requests from origins outside AllowOrigins are rejected.
type Cors struct {
	AllowCredentials *bool
	AllowHeaders     []string
	AllowMethods     []string
	AllowOrigins     []string
	ExposeHeaders    []string
	MaxAge           *int64
}

func (c *Cors) allows(origin string) bool {
	for _, candidate := range c.AllowOrigins {
		if candidate == "*" || candidate == origin {
			return true
		}
	}
	return false
}

// Middleware validates Origin, sets CORS headers and answers preflight requests.
func (c *Cors) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && !c.allows(origin) {
			writeTransportError(w, http.StatusForbidden, "origin not allowed")
			return
		}
		c.setHeaders(w, r)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (c *Cors) setHeaders(writer http.ResponseWriter, request *http.Request) {
	origin := request.Header.Get("Origin")
	switch {
	case origin != "":
		writer.Header().Set(AllowOriginHeader, origin)
		writer.Header().Add("Vary", "Origin")
	case c.allows("*"):
		writer.Header().Set(AllowOriginHeader, "*")
	}
	methods := "GET, POST, DELETE, OPTIONS"
	if len(c.AllowMethods) > 0 && c.AllowMethods[0] != "*" {
		methods = strings.Join(c.AllowMethods, Separator)
	}
	writer.Header().Set(AllowMethodsHeader, methods)
	if request.Method == http.MethodOptions {
		if requestMethod := request.Header.Get(AllControlRequestHeader); requestMethod != "" && len(c.AllowMethods) == 0 {
			writer.Header().Set(AllowMethodsHeader, requestMethod)
		}
	}
	if len(c.AllowHeaders) > 0 {
		allowedHeaders := strings.Join(c.AllowHeaders, Separator)
		if allowedHeaders == "*" {
			allowedHeaders = "Content-Type, Authorization, Mcp-Session-Id, MCP-Protocol-Version"
		}
		writer.Header().Set(AllowHeadersHeader, allowedHeaders)
	}
	if c.AllowCredentials != nil {
		writer.Header().Set(AllowCredentialsHeader, strconv.FormatBool(*c.AllowCredentials))
	}
	if c.MaxAge != nil {
		writer.Header().Set(MaxAgeHeader, strconv.Itoa(int(*c.MaxAge)))
	}
	if len(c.ExposeHeaders) > 0 {
		exposedHeaders := strings.Join(c.ExposeHeaders, Separator)
		if exposedHeaders == "*" {
			exposedHeaders = "Content-Type, X-Request-Id, MCP-Protocol-Version"
		}
		writer.Header().Set(ExposeHeadersHeader, exposedHeaders)
	}
}

// NewCors creates a permissive configuration for origins.
func NewCors(origins ...string) *Cors {
	return &Cors{
		AllowHeaders:  []string{"*"},
		AllowOrigins:  origins,
		ExposeHeaders: []string{"*"},
	}
}
