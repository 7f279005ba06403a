package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// NewFlagSet declares every configuration flag on a new pflag.FlagSet.
// The set is meant to be merged into cobra commands (AddFlagSet) or parsed
// directly by the server binary.
//
// Flags:
//
//	-a, --address                  server listen address host:port
//	    --server                   notes server base URL used by the client
//	-d, --database-dsn             PostgreSQL DSN
//	-f, --files-dir                attachment buckets root directory
//	    --redis-addr               Redis address host:port
//	    --redis-password           Redis password
//	    --redis-db                 Redis database index
//	    --local-dsn                client SQLite file
//	    --export-dir               client export directory
//	-c, --config                   JSON config file path
//	    --envelope-secret          note envelope secret
//	    --admin-password           admin confirmation password
//	    --unlimited-account        email of the quota-exempt account
//	    --token-sign-key           JWT signing key
//	    --token-issuer             JWT issuer
//	    --token-duration           JWT lifetime (e.g. 24h)
//	    --hash-key                 HMAC key for body integrity
//	    --require-email-verification
//	    --request-timeout          server request timeout
//	    --adapter-timeout          client request timeout
//	    --backup-check-delay       settle delay of the backup check
//	    --inactivity-timeout       session inactivity window
//	    --watch-interval           notes revision poll interval
//	    --log-level                log level
//	    --log-file                 client log file
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.VarP(&NetAddress{}, "address", "a", "Net address host:port")
	fs.String("server", "", "Notes server base URL")
	fs.StringP("database-dsn", "d", "", "Database DSN")
	fs.StringP("files-dir", "f", "", "Attachment storage directory")
	fs.String("redis-addr", "", "Redis address host:port")
	fs.String("redis-password", "", "Redis password")
	fs.Int("redis-db", 0, "Redis database index")
	fs.String("local-dsn", "", "Local SQLite file")
	fs.String("export-dir", "", "Export directory")
	fs.StringP("config", "c", "", "JSON config file path")
	fs.String("envelope-secret", "", "Note envelope secret")
	fs.String("admin-password", "", "Admin confirmation password")
	fs.String("unlimited-account", "", "Email of the quota-exempt account")
	fs.String("token-sign-key", "", "Token signing key")
	fs.String("token-issuer", "", "Token issuer")
	fs.Duration("token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.String("hash-key", "", "Security hash key")
	fs.Bool("require-email-verification", false, "Block sign-in of unverified accounts")
	fs.Duration("request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.Duration("adapter-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.Duration("backup-check-delay", 0, "Settle delay before the automatic backup check")
	fs.Duration("inactivity-timeout", 0, "Inactivity window before forced logout")
	fs.Duration("watch-interval", 0, "Notes revision poll interval")
	fs.String("log-level", "", "Log level")
	fs.String("log-file", "", "Client log file")

	return fs
}

// ParseFlags parses args with a fresh flag set and returns the resulting
// partial configuration.
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := NewFlagSet("notes")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	return parseFlags(fs)
}

// parseFlags reads the flags declared by [NewFlagSet] from an already parsed
// set. Flags missing from fs are treated as unset.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	r := flagReader{fs: fs}

	cfg := &StructuredConfig{
		App: App{
			EnvelopeSecret:           r.str("envelope-secret"),
			AdminPassword:            r.str("admin-password"),
			UnlimitedAccount:         r.str("unlimited-account"),
			TokenSignKey:             r.str("token-sign-key"),
			TokenIssuer:              r.str("token-issuer"),
			TokenDuration:            r.dur("token-duration"),
			HashKey:                  r.str("hash-key"),
			RequireEmailVerification: r.boolean("require-email-verification"),
			LogLevel:                 r.str("log-level"),
			LogFile:                  r.str("log-file"),
		},
		Storage: Storage{
			DB:    DB{DSN: r.str("database-dsn")},
			Files: Files{Dir: r.str("files-dir")},
			Redis: Redis{
				Addr:     r.str("redis-addr"),
				Password: r.str("redis-password"),
				DB:       r.integer("redis-db"),
			},
			Local: Local{
				DSN:       r.str("local-dsn"),
				ExportDir: r.str("export-dir"),
			},
		},
		Server: Server{
			HTTPAddress:    r.address("address"),
			RequestTimeout: r.dur("request-timeout"),
		},
		Adapter: Adapter{
			HTTPAddress:    r.str("server"),
			RequestTimeout: r.dur("adapter-timeout"),
		},
		Workers: Workers{
			BackupCheckDelay:  r.dur("backup-check-delay"),
			InactivityTimeout: r.dur("inactivity-timeout"),
			WatchInterval:     r.dur("watch-interval"),
		},
		JSONFilePath: r.str("config"),
	}

	return cfg, r.err
}

// flagReader collects values from a flag set and remembers the first
// lookup error.
type flagReader struct {
	fs  *pflag.FlagSet
	err error
}

func (r *flagReader) str(name string) string {
	if r.fs.Lookup(name) == nil {
		return ""
	}
	v, err := r.fs.GetString(name)
	r.keep(err)
	return v
}

func (r *flagReader) dur(name string) time.Duration {
	if r.fs.Lookup(name) == nil {
		return 0
	}
	v, err := r.fs.GetDuration(name)
	r.keep(err)
	return v
}

func (r *flagReader) integer(name string) int {
	if r.fs.Lookup(name) == nil {
		return 0
	}
	v, err := r.fs.GetInt(name)
	r.keep(err)
	return v
}

func (r *flagReader) boolean(name string) bool {
	if r.fs.Lookup(name) == nil {
		return false
	}
	v, err := r.fs.GetBool(name)
	r.keep(err)
	return v
}

func (r *flagReader) address(name string) string {
	f := r.fs.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

func (r *flagReader) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
