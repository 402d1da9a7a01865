package main

import (
	"github.com/szabolcsj/weblabor/internal/cli"
)

func main() {
	cli.Execute()
}
