package batch

import "context"

type Stage uint8

const (
	StageScan Stage = iota
	StageParse
	StageCollect
)

type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
	StatusCached
)

// Event: прогресс проверки. File пустой у событий всего прогона.
type Event struct {
	File   string
	Stage  Stage
	Status Status
	Errors int
}

func statusOf(fr *FileResult) Status {
	switch {
	case fr.HasErrors():
		return StatusError
	case fr.Cached:
		return StatusCached
	default:
		return StatusDone
	}
}

// emit блокируется, пока UI не прочитает событие; отмена ctx снимает блокировку.
func emit(ctx context.Context, ch chan<- Event, ev Event) {
	if ch == nil {
		return
	}
	select {
	case ch <- ev:
	case <-ctx.Done():
	}
}
