package main

import "scenesync/internal/cli"

func main() {
	cli.Main()
}
