// SPDX-License-Identifier: MPL-2.0

// specbot turns documentation-driven command specs into runnable
// command sets: validate them, parse invocations against them, browse
// their help topics and serve them interactively.
package main

func main() {
	Execute()
}
