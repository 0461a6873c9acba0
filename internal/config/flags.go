package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL or [host]:[port]
//	-s dev stub server listen address in format [host]:[port]
//	-d local database path (sqlite file)
//	-c/-config json file path with configs
//	-token-sign-key token signing key (dev stub server)
//	-token-issuer token issuer (dev stub server)
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout outbound request timeout (e.g., "15s")
//	-refresh-interval reference data refresh interval (e.g., "10m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var backendAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&backendAddress, "a", "", "Backend base URL")
	flag.Var(&serverAddress, "s", "Dev server net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Reference data refresh interval (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:   serverAddress.String(),
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
