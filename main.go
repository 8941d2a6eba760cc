package main

import "l10n-sync/cmd"

func main() {
	cmd.Execute()
}
