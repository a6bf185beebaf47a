package main

import "github.com/radiostream/server/internal/cli"

func main() {
	cli.Execute()
}
