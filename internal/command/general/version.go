package general

import "smyklot/internal/command"

// versionPlaceholder is shown when the release pipeline never substituted
// the version template, or no version was configured at all.
const (
	versionTemplate    = "{{version}}"
	versionPlaceholder = `¯\_(ツ)_/¯`
)

func versionCmd(ctx *command.Context) error {
	v := ctx.State.Snapshot().Version
	if v == "" || v == versionTemplate {
		v = versionPlaceholder
	}
	return ctx.Reply(v)
}
