package crawl

// Stage identifies one of the three crawl stages.
type Stage int

const (
	StageRanges Stage = iota + 1
	StageWordURIs
	StageWords
)

func (s Stage) String() string {
	switch s {
	case StageRanges:
		return "ranges"
	case StageWordURIs:
		return "word_uris"
	case StageWords:
		return "words"
	default:
		return "unknown"
	}
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressUnit
	ProgressFinished
	ProgressResumed
)

// ProgressEvent reports progress within a stage.
type ProgressEvent struct {
	Type      ProgressType
	Stage     Stage
	Completed int
	Total     int
	// Unit is the letter, range URI or word URI just processed.
	Unit string
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
