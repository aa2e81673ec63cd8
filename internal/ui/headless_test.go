package ui

import (
	"bytes"
	"strings"
	"testing"
)

func forcedHeadless(t *testing.T) *HeadlessManager {
	t.Helper()
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return hm
}

func TestHeadlessManager(t *testing.T) {
	t.Run("force_headless_overrides_detection", func(t *testing.T) {
		hm := NewHeadlessManager()
		hm.ForceHeadless(true)
		if !hm.IsHeadless() {
			t.Error("expected headless after ForceHeadless(true)")
		}

		hm.ForceHeadless(false)
		if hm.IsHeadless() {
			t.Error("expected interactive after ForceHeadless(false)")
		}
	})

	t.Run("clear_force_reverts_to_detection", func(t *testing.T) {
		hm := NewHeadlessManager()
		hm.ForceHeadless(false)
		hm.ClearForce()
		// Test processes have no TTY on stdin.
		if !hm.IsHeadless() {
			t.Error("expected headless under test runner")
		}
	})
}

func TestHeadlessProgress(t *testing.T) {
	t.Run("progress_bar_logs_increments", func(t *testing.T) {
		var buf bytes.Buffer
		p := newProgressImpl(DefaultTheme(true), forcedHeadless(t), &buf)

		bar := p.Start("linking", 3)
		bar.Increment(1)
		bar.SetTitle("linking agents")
		bar.Increment(1)
		bar.Done()

		out := buf.String()
		for _, want := range []string{"[1/3] linking", "[2/3] linking agents", "[3/3] linking agents"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("increment_clamps_at_total", func(t *testing.T) {
		var buf bytes.Buffer
		p := newProgressImpl(DefaultTheme(true), forcedHeadless(t), &buf)

		bar := p.Start("work", 2)
		bar.Increment(5)
		bar.Done()

		if !strings.Contains(buf.String(), "[2/2] work") {
			t.Errorf("expected clamped progress, got:\n%s", buf.String())
		}
	})

	t.Run("spinner_logs_titles", func(t *testing.T) {
		var buf bytes.Buffer
		p := newProgressImpl(DefaultTheme(true), forcedHeadless(t), &buf)

		s := p.Spinner("checking conflicts")
		s.SetTitle("validating sources")
		s.Stop()

		out := buf.String()
		if !strings.Contains(out, "checking conflicts") || !strings.Contains(out, "validating sources") {
			t.Errorf("spinner output incomplete:\n%s", out)
		}
	})

	t.Run("no_color_forces_headless_rendering", func(t *testing.T) {
		var buf bytes.Buffer
		hm := NewHeadlessManager()
		hm.ForceHeadless(false)
		p := newProgressImpl(DefaultTheme(true), hm, &buf)

		if _, ok := p.Start("x", 1).(*headlessProgressBar); !ok {
			t.Error("NoColor theme must use the headless progress bar")
		}
	})
}

func TestConfirmerHeadless(t *testing.T) {
	c := NewConfirmer(forcedHeadless(t))

	t.Run("returns_fallback_true", func(t *testing.T) {
		got, err := c.Confirm("remove links?", "", true)
		if err != nil || !got {
			t.Errorf("Confirm() = %v, %v; want true, nil", got, err)
		}
	})

	t.Run("returns_fallback_false", func(t *testing.T) {
		got, err := c.Confirm("remove links?", "", false)
		if err != nil || got {
			t.Errorf("Confirm() = %v, %v; want false, nil", got, err)
		}
	})
}
