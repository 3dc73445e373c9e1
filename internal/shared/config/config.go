package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Server    ServerConfig
	Firebase  FirebaseConfig
	Export    ExportConfig
	Policy    PolicyConfig
	Cache     CacheConfig
	TLS       TLSConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	AllowedHosts []string
}

type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string
	WebAPIKey       string
}

type ExportConfig struct {
	// CacheDir is where scratch export files live; defaults to a
	// spendwise subdirectory of the OS cache dir.
	CacheDir string
	// ShareCommand, when set, is invoked with the file URI to hand the
	// artifact off. Unset means sharing is unavailable on this host.
	ShareCommand string
	// PrintCommand renders an HTML file into a PDF file (input and
	// output paths appended as arguments).
	PrintCommand string
	// DefaultCurrency is the ISO code used when a request gives none.
	DefaultCurrency string
}

type PolicyConfig struct {
	// DemoAccessEnabled grants the demo principal relaxed read/update
	// rights on any transaction. Deployed on by default.
	DemoAccessEnabled bool
}

type CacheConfig struct {
	// CredentialDBPath locates the on-device credential cache.
	CredentialDBPath string
}

type TLSConfig struct {
	Enabled      bool
	CertPath     string
	KeyPath      string
	RedirectHTTP bool
}

type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OTLPEndpoint string
	MetricsPort  string
}

func Load() (*Config, error) {
	// Parse allowed hosts (comma-separated list)
	allowedHostsStr := getEnv("ALLOWED_HOSTS", "")
	var allowedHosts []string
	if allowedHostsStr != "" {
		for _, host := range strings.Split(allowedHostsStr, ",") {
			host = strings.TrimSpace(host)
			if host != "" {
				allowedHosts = append(allowedHosts, host)
			}
		}
	}

	cacheDir := getEnv("EXPORT_CACHE_DIR", "")
	if cacheDir == "" {
		if osCache, err := os.UserCacheDir(); err == nil {
			cacheDir = filepath.Join(osCache, "spendwise")
		} else {
			cacheDir = filepath.Join(os.TempDir(), "spendwise")
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Host:         getEnv("HOST", "0.0.0.0"),
			AllowedHosts: allowedHosts,
		},
		Firebase: FirebaseConfig{
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
			WebAPIKey:       getEnv("FIREBASE_WEB_API_KEY", ""),
		},
		Export: ExportConfig{
			CacheDir:        cacheDir,
			ShareCommand:    getEnv("EXPORT_SHARE_COMMAND", ""),
			PrintCommand:    getEnv("EXPORT_PRINT_COMMAND", "wkhtmltopdf"),
			DefaultCurrency: getEnv("EXPORT_DEFAULT_CURRENCY", "INR"),
		},
		Policy: PolicyConfig{
			DemoAccessEnabled: getBoolEnv("POLICY_DEMO_ACCESS", true),
		},
		Cache: CacheConfig{
			CredentialDBPath: getEnv("CREDENTIAL_DB_PATH", filepath.Join(cacheDir, "credentials.db")),
		},
		TLS: TLSConfig{
			Enabled:      getBoolEnv("TLS_ENABLED", false),
			CertPath:     getEnv("TLS_CERT_PATH", ""),
			KeyPath:      getEnv("TLS_KEY_PATH", ""),
			RedirectHTTP: getBoolEnv("TLS_REDIRECT_HTTP", false),
		},
		Telemetry: TelemetryConfig{
			Enabled:      getBoolEnv("OTEL_ENABLED", false),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "spendwise-api"),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_ENDPOINT", "localhost:4318"),
			MetricsPort:  getEnv("METRICS_PORT", "9090"),
		},
	}

	// Validate required fields
	if cfg.Firebase.ProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}

	// Validate TLS configuration
	if cfg.TLS.Enabled {
		if cfg.TLS.CertPath == "" {
			return nil, fmt.Errorf("TLS_CERT_PATH is required when TLS_ENABLED=true")
		}
		if cfg.TLS.KeyPath == "" {
			return nil, fmt.Errorf("TLS_KEY_PATH is required when TLS_ENABLED=true")
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept: true, false, 1, 0, yes, no (case-insensitive)
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
