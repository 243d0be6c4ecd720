// Package download offers a way to obtain a missing program: a direct
// download for platforms with a known binary URL, an install page for
// programs that have one, or a manual-install instruction. Downloads are
// fetched over HTTPS and placed where the executable locator looks first.
package download
