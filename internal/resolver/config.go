// internal/resolver/config.go
package resolver

import (
	"time"

	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/config"
)

// Config holds the resolver's runtime settings.
type Config struct {
	// EnquiryTimeout bounds the best-effort enquiry lookup call.
	EnquiryTimeout time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		EnquiryTimeout: time.Duration(cfg.Enquiry.Timeout) * time.Millisecond,
	}
}
