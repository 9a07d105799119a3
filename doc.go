/*
The package touchpad-toggle keeps a laptop touchpad's xinput state in line with
a policy. Designed to run as part of a user X session on a Linux system, e.g.
a Chromebook running a regular distro with the cyapa touchpad driver and a
Wacom tablet.

Every few seconds it runs xinput to find the touchpad, reads its properties
and applies one of four modes:

    touchpad-toggle --activate          # keep it enabled
    touchpad-toggle --deactivate        # keep it disabled
    touchpad-toggle --fixes             # enabled, no tap-to-click, right click zone
    touchpad-toggle --deactivate-mouse  # disabled while the stylus is enabled

When it is stopped (Ctrl-C, SIGTERM) the touchpad is enabled again so you
never end up without a pointer.

Devices are found by substrings of their line in the `xinput` listing. If the
defaults don't match your hardware, run

    touchpad-toggle -l

to see the input devices udev knows about, and change the matchers in

	$XDG_CONFIG_HOME/touchpad-toggle/config.toml

See the example-config.toml for the config file structure.
*/
package main
