package styles

// Nerd Font icons
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher
	IconArrow     = "" // arrow right

	IconCheck    = "" // check
	IconX        = "" // x
	IconImage    = "" // image file
	IconFolder   = "" // folder
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconCache    = "" // cache
	IconGlobe    = "" // browser/web
)
