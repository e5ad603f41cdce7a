package consts

// Permissions for the files and directories ytprompt creates.
const (
	PermsHomeProgDir = 0o755
	PermsGenericDir  = 0o755
)
