package models

// AppBuildInfo is the version triple stamped into both binaries with
// -ldflags. It is reported by "notes version", the browser info view and
// the server version endpoint.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

// Response converts the triple into the version endpoint payload, reporting
// unset parts as "N/A".
func (a AppBuildInfo) Response() VersionResponse {
	na := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return VersionResponse{Version: na(a.version), Date: na(a.date), Commit: na(a.commit)}
}
