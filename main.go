package main

import "landcover-tools/cmd"

func main() {
	cmd.Execute()
}
