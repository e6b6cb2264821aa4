package main

import "github.com/pesislab/kentta/cmd/kentta/cmd"

func main() {
	cmd.Execute()
}
