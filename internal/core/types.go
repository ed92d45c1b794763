package core

const (
	AppName    = "Aurora CLI"
	AppBinary  = "aurora"
	AppVersion = "0.1.0"
)
