package main

import "message-parser/internal/cli"

func main() {
	cli.Execute()
}
