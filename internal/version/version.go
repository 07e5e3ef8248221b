// Package version holds the application identity shared by both commands.
package version

const (
	Organization = "Esgrove"
	AppName      = "PlaylistTool"
	Version      = "1.0.0"
	// AppID is the reverse domain identifier used for preferences storage.
	AppID = "com.esgrove.playlisttool"
)
