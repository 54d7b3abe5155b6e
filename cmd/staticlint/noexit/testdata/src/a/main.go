package main

import (
	"fmt"
	"os"
	sys "os"
)

func init() {
	if len(os.Args) > 5 {
		os.Exit(2) // want "вызов os.Exit в функции init запрещён"
	}
}

func main() {
	defer fmt.Println("done")
	if len(os.Args) > 1 {
		os.Exit(1) // want "вызов os.Exit в функции main запрещён"
	}
	sys.Exit(0) // want "вызов os.Exit в функции main запрещён"
}

func helper() {
	os.Exit(3)
}

type app struct{}

func (app) main() {
	os.Exit(4)
}
