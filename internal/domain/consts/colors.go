package consts

// Colors
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[91m"
)

const (
	RedError string = ColorRed + "[ERROR] " + ColorReset
)
