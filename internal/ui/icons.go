package ui

import "os"

// nfEnabled reports whether Nerd Font icons should be rendered. Set
// NERDFONT=0 on terminals without a patched font.
func nfEnabled() bool {
	return os.Getenv("NERDFONT") != "0"
}

func nf(icon, fallback string) string {
	if nfEnabled() {
		return icon
	}
	return fallback
}

func IconTerminal() string { return nf("\uf120", ">_") }  // fa-terminal
func IconWebsite() string  { return nf("\uf0ac", "www") } // fa-globe
func IconClock() string    { return nf("\uf017", "") }    // fa-clock-o
func IconVersion() string  { return nf("\uf02b", "v") }   // fa-tag
func IconOnline() string   { return nf("\uf1eb", "on") }  // fa-wifi
func IconOffline() string  { return nf("\uf127", "off") } // fa-chain-broken
