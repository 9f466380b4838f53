package reveal

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Its-donkey/portfolio-fx/internal/ui/clock"
	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
)

// Counter ramp timing: CounterSteps ticks spread over CounterDuration.
const (
	CounterSteps    = 100
	CounterDuration = 2000 * time.Millisecond
	CounterInterval = CounterDuration / CounterSteps
)

var leadingNumber = regexp.MustCompile(`\d+`)

// ParseCounter extracts the first integer in text and the text with that integer removed.
// ok is false when text has no digits.
func ParseCounter(text string) (target int, suffix string, ok bool) {
	digits := leadingNumber.FindString(text)
	if digits == "" {
		return 0, "", false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, "", false
	}
	return n, strings.Replace(text, strconv.Itoa(n), "", 1), true
}

// CounterFrame is the text shown after step ticks of a ramp towards target.
// done is true on the tick that lands on the exact target.
func CounterFrame(target int, suffix string, step int) (text string, done bool) {
	value := target * step / CounterSteps
	if step >= CounterSteps || value >= target {
		return strconv.Itoa(target) + suffix, true
	}
	return strconv.Itoa(value) + suffix, false
}

// AnimateCounter ramps el from 0 to the number in its text. It reports false
// when the text holds no number.
func AnimateCounter(s clock.Scheduler, el dom.Element) bool {
	target, suffix, ok := ParseCounter(el.Text())
	if !ok {
		return false
	}
	step := 0
	var timer clock.Timer
	timer = s.Every(CounterInterval, func() {
		step++
		text, done := CounterFrame(target, suffix, step)
		el.SetText(text)
		if done {
			timer.Stop()
		}
	})
	return true
}
