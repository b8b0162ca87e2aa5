// SPDX-License-Identifier: Unlicense OR MIT

package host

import (
	"errors"
	"fmt"
	"testing"

	"github.com/PaxPlay/gio-glfw-gallery/gfx"
)

func TestRunLoopStopsOnCloseRequest(t *testing.T) {
	var frames, polls int
	closed := false
	err := runLoop(
		func() bool { return closed },
		func() { polls++ },
		func() error {
			frames++
			if frames == 3 {
				closed = true
			}
			return nil
		},
		func(error) { t.Fatal("recover called without a surface error") },
	)
	if err != nil {
		t.Fatal(err)
	}
	if frames != 3 {
		t.Errorf("got %d frames, want 3", frames)
	}
	if polls != 4 {
		t.Errorf("got %d polls, want 4", polls)
	}
}

func TestRunLoopCloseDuringPollSkipsFrame(t *testing.T) {
	closed := false
	err := runLoop(
		func() bool { return closed },
		func() { closed = true },
		func() error {
			t.Fatal("frame rendered after close request")
			return nil
		},
		func(error) {},
	)
	if err != nil {
		t.Fatal(err)
	}
}

func TestRunLoopRecoversSurfaceErrors(t *testing.T) {
	var recovered []error
	frames := 0
	closed := false
	err := runLoop(
		func() bool { return closed },
		func() {},
		func() error {
			frames++
			switch frames {
			case 1:
				return fmt.Errorf("acquiring frame: %w", gfx.ErrSurfaceOutdated)
			case 2:
				return gfx.ErrAcquireTimeout
			default:
				closed = true
				return nil
			}
		},
		func(err error) { recovered = append(recovered, err) },
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(recovered) != 2 {
		t.Fatalf("recover called %d times, want 2", len(recovered))
	}
	if !errors.Is(recovered[0], gfx.ErrSurfaceOutdated) {
		t.Errorf("first recovery got %v, want ErrSurfaceOutdated", recovered[0])
	}
	if !errors.Is(recovered[1], gfx.ErrAcquireTimeout) {
		t.Errorf("second recovery got %v, want ErrAcquireTimeout", recovered[1])
	}
	if frames != 3 {
		t.Errorf("got %d frames, want 3", frames)
	}
}

func TestRunLoopFatalErrorTerminates(t *testing.T) {
	frames := 0
	err := runLoop(
		func() bool { return false },
		func() {},
		func() error {
			frames++
			return gfx.ErrOutOfMemory
		},
		func(error) { t.Fatal("recover called for a fatal error") },
	)
	if !errors.Is(err, gfx.ErrOutOfMemory) {
		t.Errorf("got %v, want ErrOutOfMemory", err)
	}
	if frames != 1 {
		t.Errorf("got %d frames, want 1", frames)
	}
}
