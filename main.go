// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "skillpack-cli/cmd/skillpack"
)

func main() {
	cmd.Execute()
}
