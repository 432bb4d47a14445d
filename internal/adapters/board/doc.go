// Package board drives the indicator directly from microcontroller pins.
// It builds only with TinyGo: sensors are read through machine.Pin and the
// status pixel is a WS2812 driven by tinygo.org/x/drivers/ws2812.
package board
