package config

import "time"

// Default configuration values
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultServiceName = "b24bridge"
	DefaultVersion     = "dev"

	// DefaultBotCode identifies the bot integration on imbot.register.
	DefaultBotCode = "cultiv_bot_001"

	// DefaultDispatchTimeout bounds a single outbound reply POST.
	DefaultDispatchTimeout = 10 * time.Second

	// Dispatch worker pool sizing. One webhook produces at most one reply,
	// so a small pool keeps up comfortably.
	DefaultDispatchWorkers   = 4
	DefaultDispatchQueueSize = 64
)
