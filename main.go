// SPDX-License-Identifier: MPL-2.0

package main

import "tenper-cli/cmd/tenper"

func main() {
	cmd.Execute()
}
