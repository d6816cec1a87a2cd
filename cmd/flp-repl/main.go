package main

import (
	"os"

	"flp/repl"
)

func main() {
	repl.Start(os.Stdin, os.Stdout)
}
