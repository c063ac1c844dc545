package trigger

import (
	"fmt"
	"os"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/averill/deckd/internal/logging"
	"github.com/averill/deckd/internal/version"
)

const (
	// ServiceType is the mDNS service type trigger clients browse for.
	ServiceType = "_deckd._tcp"

	// ServiceDomain is the mDNS domain (typically "local.").
	ServiceDomain = "local."
)

// Announcer keeps an mDNS registration alive until Shutdown.
type Announcer struct {
	server *zeroconf.Server
}

// Announce registers the trigger server on the local network so clients can
// find it without configuration. The instance name is the hostname.
func Announce(port int) (*Announcer, error) {
	instance, err := os.Hostname()
	if err != nil || instance == "" {
		instance = "deckd"
	}

	txt := []string{
		"path=/ws",
		fmt.Sprintf("version=%s", version.Version),
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Advertising trigger service",
		zap.String("instance", instance),
		zap.String("type", ServiceType),
		zap.Int("port", port),
	)
	return &Announcer{server: server}, nil
}

// Shutdown withdraws the mDNS registration.
func (a *Announcer) Shutdown() {
	a.server.Shutdown()
}
