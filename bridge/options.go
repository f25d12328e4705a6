package bridge

import (
	"net"
	"strconv"
	"time"
)

// Config scopes accepted by Options.ConfigScope.
const (
	ScopeRequest = "request"
	ScopeShared  = "shared"
	ScopeEnv     = "env"
)

// Options holds the command line and environment settings of the bridge.
type Options struct {
	Port        int    `short:"p" long:"port" env:"PORT" description:"listen port" default:"8000"`
	Host        string `long:"host" env:"HOST" description:"listen host" default:"0.0.0.0"`
	Path        string `long:"path" description:"endpoint path" default:"/mcp"`
	UpstreamURL string `short:"u" long:"upstream" env:"MCP_UPSTREAM_URL" description:"upstream mcp url; in-process registry when empty"`

	ProtocolVersion string `long:"protocol" description:"protocol version reported on initialize" default:"2024-11-05"`
	Name            string `long:"name" description:"server name" default:"mssql_mcp_server"`
	Version         string `long:"version" description:"server version" default:"0.1.0"`
	Description     string `long:"description" description:"server description" default:"Microsoft SQL Server MCP server"`

	ConfigScope string `long:"config-scope" description:"configuration scope" choice:"request" choice:"shared" choice:"env" default:"request"`
	EnvPrefix   string `long:"env-prefix" description:"configuration slot prefix" default:"MSSQL_"`

	LogLevel  string `long:"log-level" env:"LOG_LEVEL" description:"log level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	LogFormat string `long:"log-format" env:"LOG_FORMAT" description:"log format" choice:"text" choice:"json" default:"text"`

	CorsOrigins     []string      `long:"cors-origin" description:"allowed CORS origin, repeat for more"`
	ShutdownTimeout time.Duration `long:"shutdown-timeout" description:"graceful shutdown timeout" default:"5s"`
}

// Addr returns the listen address.
func (o *Options) Addr() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}
