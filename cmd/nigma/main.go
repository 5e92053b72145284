// Command nigma is the command-line face of the nigma classical
// cipher toolkit: encode, decode and frequency-analyze short messages
// with any of the supported cipher families.
//
// Usage:
//
//	nigma encode --cipher caesar --key 3 "ATTACK AT DAWN"
//	nigma decode --cipher adfgvx --key PRIVACY --key2 3142 "VGXVGF…"
//	nigma analyze --ngram 2 "ciphertext to profile"
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
