package main

import (
	"context"
	"errors"
	"log"
	"os/exec"
	"syscall"
	"time"
)

// pollLoop runs act on the touchpad every interval until ctx is done.
// Once the touchpad is found, whatever ends the loop leaves it enabled.
func pollLoop(ctx context.Context, x *xinput, touchpad matcher,
	interval time.Duration, act action) (err error) {
	id, err := x.deviceID(touchpad)
	if err != nil {
		return err
	}
	defer func() {
		log.Println("Activating touchpad")
		if aerr := x.setActive(id, true); aerr != nil && err == nil {
			err = aerr
		}
	}()

	on, err := x.active(id)
	if err != nil {
		if interrupted(ctx, err) {
			return nil
		}
		return err
	}
	if on {
		log.Println("Touchpad is active")
	} else {
		log.Println("Touchpad is not active")
	}

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
		if ctx.Err() != nil {
			return nil
		}
		if err := act(id); err != nil {
			if interrupted(ctx, err) {
				return nil
			}
			return err
		}
		timer.Reset(interval)
	}
}

// A Ctrl-C reaches the xinput child too, and may kill it before ctx is
// cancelled.
func interrupted(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		return false
	}
	ws, ok := ee.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return false
	}
	switch ws.Signal() {
	case syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM:
		return true
	}
	return false
}
