package main

import "github.com/mchmarny/heartrisk/pkg/cli"

func main() {
	cli.Execute()
}
