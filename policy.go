package main

import (
	"errors"
	"log"
)

// action is run against the touchpad once per poll interval
type action func(touchpad int) error

func activeAction(x *xinput, on bool) action {
	return func(touchpad int) error {
		return x.checkSetActive(touchpad, on)
	}
}

// Keeps the touchpad on and the configured properties in place.
func fixesAction(x *xinput, fixes []fix) action {
	return func(touchpad int) error {
		if err := x.checkSetActive(touchpad, true); err != nil {
			return err
		}
		for _, f := range fixes {
			if err := x.setIntProp(touchpad, f.Prop, f.Value); err != nil {
				return err
			}
		}
		return nil
	}
}

// autoSwitchAction turns the touchpad off while the stylus is enabled
// (in proximity) and back on once it isn't. Without a usable stylus the
// touchpad is kept on.
func autoSwitchAction(x *xinput, stylus matcher) action {
	return func(touchpad int) error {
		tablet, err := x.deviceID(stylus)
		if errors.Is(err, errNoMatch) || errors.Is(err, errAmbiguous) {
			on, err := x.active(touchpad)
			if err != nil {
				return err
			}
			if !on {
				log.Println("Error checking tablet status, activating touchpad")
				return x.setActive(touchpad, true)
			}
			return nil
		}
		if err != nil {
			return err
		}
		penOn, err := x.active(tablet)
		if err != nil {
			return err
		}
		touchOn, err := x.active(touchpad)
		if err != nil {
			return err
		}
		switch {
		case penOn && touchOn:
			log.Println("Tablet active, deactivating touchpad")
			return x.setActive(touchpad, false)
		case !penOn && !touchOn:
			log.Println("Tablet inactive, activating touchpad")
			return x.setActive(touchpad, true)
		}
		return nil
	}
}
