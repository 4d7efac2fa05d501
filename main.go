package main

import "github.com/lazharichir/dealer/cli"

func main() {
	cli.Execute()
}
