package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// PortalBaseURL is the public URL of the client portal, used to build
	// the links embedded in client notification emails.
	PortalBaseURL string `mapstructure:"portal_base_url"`
	// AllowedOrigins lists the origins permitted by CORS. "*" allows any.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// AdminConfig holds the shared-secret admin capability. There is no session
// state; the secret is supplied on every admin request.
type AdminConfig struct {
	Password string `mapstructure:"password"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	// NotificationAddress receives the admin-facing notifications
	// (new request, client reply).
	NotificationAddress string `mapstructure:"notification_address"`
}

// IsConfigured reports whether an SMTP endpoint is available. When false the
// service degrades to a logged no-op mailer instead of failing.
func (e *EmailConfig) IsConfigured() bool {
	return e.SMTPHost != ""
}

type StorageConfig struct {
	S3Bucket        string `mapstructure:"s3_bucket"`
	S3Region        string `mapstructure:"s3_region"`
	S3AccessKeyID   string `mapstructure:"s3_access_key_id"`
	S3SecretKey     string `mapstructure:"s3_secret_key"`
	LocalPath       string `mapstructure:"local_path"`
	LocalURLPrefix  string `mapstructure:"local_url_prefix"`
}

// IsS3Configured reports whether S3 credentials are present. When false the
// attachment store falls back to the local filesystem.
func (s *StorageConfig) IsS3Configured() bool {
	return s.S3Bucket != "" && s.S3AccessKeyID != "" && s.S3SecretKey != ""
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// IsConfigured reports whether a redis endpoint is available. When false
// rate limiting is disabled.
func (r *RedisConfig) IsConfigured() bool {
	return r.Host != ""
}

type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Requests      int  `mapstructure:"requests"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}
