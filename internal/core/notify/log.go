package notify

import "github.com/rs/zerolog"

// LogNotifier writes toasts to a zerolog logger at the matching level.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(l zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: l}
}

func (n *LogNotifier) Success(title, description string) {
	n.emit(n.log.Info(), LevelSuccess, title, description)
}

func (n *LogNotifier) Error(title, description string) {
	n.emit(n.log.Error(), LevelError, title, description)
}

func (n *LogNotifier) Warning(title, description string) {
	n.emit(n.log.Warn(), LevelWarning, title, description)
}

func (n *LogNotifier) Info(title, description string) {
	n.emit(n.log.Info(), LevelInfo, title, description)
}

func (n *LogNotifier) Show(opts Options) {
	var ev *zerolog.Event
	switch opts.Level {
	case LevelError:
		ev = n.log.Error()
	case LevelWarning:
		ev = n.log.Warn()
	default:
		ev = n.log.Info()
	}
	if opts.Duration > 0 {
		ev = ev.Dur("duration", opts.Duration)
	}
	if len(opts.Meta) > 0 {
		ev = ev.Fields(opts.Meta)
	}
	n.emit(ev, opts.Level, opts.Title, opts.Description)
}

func (n *LogNotifier) emit(ev *zerolog.Event, level Level, title, description string) {
	if level != "" {
		ev = ev.Str("toast", string(level))
	}
	if description != "" {
		ev = ev.Str("description", description)
	}
	ev.Msg(title)
}

// Multi fans every call out to each notifier in order.
type Multi []Notifier

func (m Multi) Success(title, description string) {
	for _, n := range m {
		n.Success(title, description)
	}
}

func (m Multi) Error(title, description string) {
	for _, n := range m {
		n.Error(title, description)
	}
}

func (m Multi) Warning(title, description string) {
	for _, n := range m {
		n.Warning(title, description)
	}
}

func (m Multi) Info(title, description string) {
	for _, n := range m {
		n.Info(title, description)
	}
}

func (m Multi) Show(opts Options) {
	for _, n := range m {
		n.Show(opts)
	}
}

var (
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = Multi(nil)
)
