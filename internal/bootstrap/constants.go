package bootstrap

// Log messages
const (
	LogMsgShuttingDownServer   = "Shutting down server"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingDispatchPool = "Stopping dispatch pool"
	LogMsgServerStopped        = "Server stopped"
)
