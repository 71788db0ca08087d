package main

import "github.com/satriahrh/buyer-hash/adapters/cli"

func main() {
	cli.Execute()
}
