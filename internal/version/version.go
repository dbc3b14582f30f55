package version

// Version is substituted by the release pipeline; the default is the
// unresolved template placeholder, which the version command hides.
var (
	AppName = "smyklot"
	Version = "{{version}}"
)
