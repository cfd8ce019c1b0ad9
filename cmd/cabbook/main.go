package main

import "github.com/example/cab-booking/cmd"

func main() {
	cmd.Execute()
}
