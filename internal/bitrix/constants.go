package bitrix

import "time"

// REST method names
const (
	MethodMessageAdd  = "im.message.add"
	MethodBotRegister = "imbot.register"
)

// Form and query parameter names
const (
	ParamAuth     = "auth"
	ParamDialogID = "DIALOG_ID"
	ParamMessage  = "MESSAGE"
)

// Registration defaults sent to imbot.register
const (
	BotType         = "B"
	BotOpenline     = "N"
	BotName         = "Faris Bot"
	BotColor        = "GREEN"
	BotEmail        = "bot@cultiv.ai"
	BotGender       = "M"
	BotWorkPosition = "AI Assistant"
)

// Legacy PHP handler suffix stripped when normalizing handler URLs
const legacyHandlerSuffix = "/b24-hook.php"

// Timeouts
const (
	DefaultTimeout = 10 * time.Second
)

// Log messages
const (
	LogMsgSendingMessage     = "Sending message to Bitrix24"
	LogMsgMessageSent        = "Message sent to Bitrix24"
	LogMsgMessageFailed      = "Failed to send message to Bitrix24"
	LogMsgRegisteringBot     = "Registering bot with Bitrix24"
	LogMsgBotRegistered      = "Bot registered with Bitrix24"
	LogMsgRegistrationFailed = "Bot registration failed"
	LogMsgTLSVerifyDisabled  = "TLS certificate verification disabled"
)
