package domain

import (
	"fmt"
	"time"
)

// Window полуинтервал времени [Start, End).
// Два окна, соприкасающиеся границей (End1 == Start2), не пересекаются.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow создает окно [start, end)
func NewWindow(start, end time.Time) Window {
	return Window{Start: start, End: end}
}

// IsZero true, если окно не задано
func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// IsEmpty true для окон нулевой или отрицательной длины
func (w Window) IsEmpty() bool {
	return !w.Start.Before(w.End)
}

// Validate проверяет, что окно задано и Start < End
func (w Window) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidWindow)
	}
	if w.IsEmpty() {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWindow,
			w.Start.Format(TimeFormat), w.End.Format(TimeFormat))
	}
	return nil
}

// Duration длина окна
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps проверяет пересечение полуинтервалов: s1 < e2 && s2 < e1.
// Пустые окна не пересекаются ни с чем.
func (w Window) Overlaps(other Window) bool {
	if w.IsEmpty() || other.IsEmpty() {
		return false
	}
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// UTC возвращает окно в UTC
func (w Window) UTC() Window {
	return Window{Start: w.Start.UTC(), End: w.End.UTC()}
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(TimeFormat), w.End.Format(TimeFormat))
}
