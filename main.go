package main

import "agenda-system/cmd"

func main() {
	cmd.Execute()
}
