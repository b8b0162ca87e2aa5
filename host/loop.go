// SPDX-License-Identifier: Unlicense OR MIT

package host

import (
	"github.com/PaxPlay/gio-glfw-gallery/gfx"
)

// runLoop is the event loop skeleton: poll platform events, render,
// repeat until closed. Recoverable surface errors hand the frame to
// recover and continue; anything else terminates the loop.
func runLoop(shouldClose func() bool, poll func(), frame func() error, recover func(error)) error {
	for !shouldClose() {
		poll()
		if shouldClose() {
			break
		}
		if err := frame(); err != nil {
			if gfx.Recoverable(err) {
				recover(err)
				continue
			}
			return err
		}
	}
	return nil
}
