package main

import "lifegate/internal/cli"

func main() {
	cli.Execute()
}
