package tasks

import (
	"github.com/fplradar/radar/app/feed"
)

// State is shared by the tasks of a single run. The digest task fills
// it; downstream tasks read from it.
type State struct {
	Videos []feed.Video
}
