package main

import "zotsync/cmd/zotsync/cmd"

func main() {
	cmd.Execute()
}
