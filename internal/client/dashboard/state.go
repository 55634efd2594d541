package dashboard

import "time"

// State обозначает этап одной загрузки snapshot.
// Каждый вызов Load/Refresh начинается со StateStart и заканчивается StateDone.
type State int

const (
	StateStart State = iota
	StateCacheCheck
	StateFetching
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateCacheCheck:
		return "cache-check"
	case StateFetching:
		return "fetching"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Source откуда взят snapshot
type Source int

const (
	SourceNone Source = iota
	SourceCache
	SourceRemote
	SourceDemo
)

func (s Source) String() string {
	switch s {
	case SourceCache:
		return "cache"
	case SourceRemote:
		return "server"
	case SourceDemo:
		return "demo"
	default:
		return "none"
	}
}

// LoadResult описывает завершенную загрузку
type LoadResult struct {
	At     time.Time
	Err    error // причина перехода на демо-данные
	Source Source
}

// Offline сообщает, что загрузка закончилась демо-данными
func (r LoadResult) Offline() bool {
	return r.Source == SourceDemo
}
