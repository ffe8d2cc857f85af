// Package resources carries the app icons as in-source SVG assets, so no
// files need to ship next to the binary.
package resources

import "fyne.io/fyne/v2"

var activeIcon = fyne.NewStaticResource("breathbox-active.svg", []byte(
	`<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64" viewBox="0 0 64 64">
  <circle cx="32" cy="32" r="28" fill="#6a40bf"/>
  <circle cx="32" cy="32" r="16" fill="#bf406a" opacity="0.55"/>
</svg>`))

var pausedIcon = fyne.NewStaticResource("breathbox-paused.svg", []byte(
	`<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64" viewBox="0 0 64 64">
  <circle cx="32" cy="32" r="28" fill="#6f6f78"/>
  <rect x="24" y="22" width="5" height="20" fill="#e8e8ef"/>
  <rect x="35" y="22" width="5" height="20" fill="#e8e8ef"/>
</svg>`))

// ActiveIcon returns the icon shown while the cycle is running.
func ActiveIcon() fyne.Resource { return activeIcon }

// PausedIcon returns the icon shown while the cycle is paused.
func PausedIcon() fyne.Resource { return pausedIcon }
