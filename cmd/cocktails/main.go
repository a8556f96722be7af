package main

import "github.com/TemirB/cocktail-shop/internal/cli"

func main() {
	cli.Execute()
}
